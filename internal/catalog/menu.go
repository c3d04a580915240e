package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Course identifies which menu list an item belongs to.
type Course string

const (
	CourseEntree        Course = "entree"
	CourseSideDish      Course = "side_dish"
	CourseAccompaniment Course = "accompaniment"
)

// Courses lists every course in ordering sequence.
func Courses() []Course {
	return []Course{CourseEntree, CourseSideDish, CourseAccompaniment}
}

// Label is the human readable course name.
func (c Course) Label() string {
	switch c {
	case CourseEntree:
		return "Entree"
	case CourseSideDish:
		return "Side Dish"
	case CourseAccompaniment:
		return "Accompaniment"
	default:
		return string(c)
	}
}

// MenuItem is an immutable catalog entry.
type MenuItem struct {
	ID          string
	Course      Course
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
}

// ItemID derives a stable id from course and name so re-seeding is idempotent.
func ItemID(course Course, name string) string {
	key := "menu:" + string(course) + ":" + strings.ToLower(strings.TrimSpace(name))
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

func newItem(course Course, name, description, price, image string) MenuItem {
	return MenuItem{
		ID:          ItemID(course, name),
		Course:      course,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Image:       image,
	}
}

// Catalog holds the three fixed menu lists.
type Catalog struct {
	Entrees        []MenuItem
	SideDishes     []MenuItem
	Accompaniments []MenuItem
}

// Items returns the list for a course. Unknown courses yield nil.
func (c Catalog) Items(course Course) []MenuItem {
	switch course {
	case CourseEntree:
		return c.Entrees
	case CourseSideDish:
		return c.SideDishes
	case CourseAccompaniment:
		return c.Accompaniments
	}
	return nil
}

// All returns every item, entrees first.
func (c Catalog) All() []MenuItem {
	out := make([]MenuItem, 0, len(c.Entrees)+len(c.SideDishes)+len(c.Accompaniments))
	out = append(out, c.Entrees...)
	out = append(out, c.SideDishes...)
	return append(out, c.Accompaniments...)
}

// Default is the built-in lunch menu.
func Default() Catalog {
	return Catalog{
		Entrees: []MenuItem{
			newItem(CourseEntree, "Cauliflower", "Whole cauliflower, brined, roasted, and deep fried", "7.00", "cauliflower"),
			newItem(CourseEntree, "Three Bean Chili", "Black beans, red beans, kidney beans, slow cooked, topped with onion", "4.00", "three_bean_chili"),
			newItem(CourseEntree, "Mushroom Pasta", "Penne pasta, mushrooms, basil, with plum tomatoes cooked in garlic and olive oil", "5.50", "mushroom_pasta"),
			newItem(CourseEntree, "Spicy Black Bean Skillet", "Seasonal vegetables, black beans, house spice blend, served with avocado and quick pickled onions", "5.50", "black_bean_skillet"),
		},
		SideDishes: []MenuItem{
			newItem(CourseSideDish, "Summer Salad", "Heirloom tomatoes, butter lettuce, peaches, avocado, balsamic dressing", "2.50", "summer_salad"),
			newItem(CourseSideDish, "Butternut Squash Soup", "Roasted butternut squash, roasted peppers, chili oil", "3.00", "butternut_squash_soup"),
			newItem(CourseSideDish, "Spicy Potatoes", "Marble potatoes, roasted, and fried in house spice blend", "2.00", "spicy_potatoes"),
			newItem(CourseSideDish, "Coconut Rice", "Rice, coconut milk, lime, and sugar", "1.50", "coconut_rice"),
		},
		Accompaniments: []MenuItem{
			newItem(CourseAccompaniment, "Lunch Roll", "Fresh baked roll made in house", "0.50", "lunch_roll"),
			newItem(CourseAccompaniment, "Mixed Berries", "Strawberries, blueberries, raspberries, and huckleberries", "1.00", "mixed_berries"),
			newItem(CourseAccompaniment, "Pickled Veggies", "Pickled cucumbers and carrots, made in house", "0.50", "pickled_veggies"),
		},
	}
}
