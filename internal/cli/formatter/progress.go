package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/emopath/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
	ratingWidth = 10
)

// RenderRatingBar renders a 0-10 rating like [████░░░░░░] 4/10. Higher
// ratings mean more distress, so the bar turns from green to red.
func RenderRatingBar(value, width int) string {
	if value < domain.MinRating {
		value = domain.MinRating
	}
	if value > domain.MaxRating {
		value = domain.MaxRating
	}
	if width < 2 {
		width = 2
	}

	filled := value * width / domain.MaxRating
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case value > 6:
		style = StyleRed
	case value > 3:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %2d/%d", style.Render(bar), value, domain.MaxRating)
}

// FormatRatings lists the four check-in answers as bars.
func FormatRatings(r domain.Ratings) string {
	rows := []struct {
		label string
		value int
	}{
		{"Stress", r.Stress},
		{"Overwhelm", r.Overwhelm},
		{"Anger", r.Anger},
		{"Sadness", r.Sadness},
	}
	var b strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&b, "  %-10s %s\n", row.label, RenderRatingBar(row.value, ratingWidth))
	}
	return b.String()
}
