package engine

import (
	"fmt"

	"github.com/fodmaplab/reintro/pkg/domain"
)

// Static clinical tables. These never change at runtime; accessors hand out
// copies so callers cannot mutate them.

var defaultGroupSequence = []domain.FODMAPGroup{
	domain.GroupFructose,
	domain.GroupLactose,
	domain.GroupFructans,
	domain.GroupGalactans,
	domain.GroupPolyols,
}

var recommendedFoods = map[domain.FODMAPGroup][3]string{
	domain.GroupFructose:  {"Honey", "Mango", "Apple"},
	domain.GroupLactose:   {"Milk", "Yogurt", "Soft cheese"},
	domain.GroupFructans:  {"Wheat bread", "Garlic", "Onion"},
	domain.GroupGalactans: {"Chickpeas", "Lentils", "Kidney beans"},
	domain.GroupPolyols:   {"Avocado", "Mushrooms", "Blackberries"},
}

// portionProgression holds the small/medium/large display portions for the
// three testing days of each group.
var portionProgression = map[domain.FODMAPGroup][3]string{
	domain.GroupFructose:  {"1 tsp", "2 tsp", "1 tbsp"},
	domain.GroupLactose:   {"1/4 cup", "1/2 cup", "1 cup"},
	domain.GroupFructans:  {"1/2 slice", "1 slice", "2 slices"},
	domain.GroupGalactans: {"2 tbsp", "1/4 cup", "1/2 cup"},
	domain.GroupPolyols:   {"1/4 cup", "1/2 cup", "1 cup"},
}

// washoutDurations maps the worst observed severity to the mandated washout
// length in days.
var washoutDurations = map[domain.SymptomSeverity]int{
	domain.SeverityNone:     3,
	domain.SeverityMild:     3,
	domain.SeverityModerate: 7,
	domain.SeveritySevere:   7,
}

// DefaultGroupSequence returns the default group-testing order.
func DefaultGroupSequence() []domain.FODMAPGroup {
	seq := make([]domain.FODMAPGroup, len(defaultGroupSequence))
	copy(seq, defaultGroupSequence)
	return seq
}

// RecommendedFoods returns the three recommended test foods for a group.
func RecommendedFoods(group domain.FODMAPGroup) []string {
	foods, ok := recommendedFoods[group]
	if !ok {
		return nil
	}
	return []string{foods[0], foods[1], foods[2]}
}

// PortionForDay returns the display portion for the given testing day.
// Day must be 1, 2 or 3; anything else is a programming-contract violation
// upstream of the normal validation path.
func PortionForDay(group domain.FODMAPGroup, day int) (string, error) {
	if day < 1 || day > 3 {
		return "", fmt.Errorf("invalid testing day %d: must be 1, 2 or 3", day)
	}
	portions, ok := portionProgression[group]
	if !ok {
		return "", fmt.Errorf("unknown FODMAP group %q", group)
	}
	return portions[day-1], nil
}

// WashoutDuration returns the washout length in days for a severity.
// Unknown severities get the most cautious duration.
func WashoutDuration(severity domain.SymptomSeverity) int {
	if days, ok := washoutDurations[severity]; ok {
		return days
	}
	return washoutDurations[domain.SeveritySevere]
}
