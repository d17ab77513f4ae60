package fields

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractProductIncludesPhrase(t *testing.T) {
	text := "The scope includes laptops, desktops, and display monitors, etc. Delivery to all campuses.\n"
	got := extractProduct(text, "")
	assert.Equal(t, "laptops, desktops, and display monitors", got)
}

func TestExtractProductBulletList(t *testing.T) {
	text := "Items requested:\n- Dell Latitude laptop 14 inch\n- HP monitor 24 inch\n"
	got := extractProduct(text, "")
	assert.Equal(t, "Dell Latitude laptop 14 inch; HP monitor 24 inch", got)
}

func TestExtractProductParenthetical(t *testing.T) {
	text := "Pricing should cover display monitors (24-inch and 27-inch class) as quoted.\n"
	got := extractProduct(text, "")
	assert.Equal(t, "display monitors (24-inch and 27-inch class)", got)
}

func TestExtractProductTitleSuppression(t *testing.T) {
	title := "Student Chromebooks"
	// Candidate that merely contains the title keeps the remainder.
	text := "The scope includes Student Chromebooks and tablet accessories for classrooms.\n"
	got := extractProduct(text, title)
	assert.NotContains(t, strings.ToLower(got), strings.ToLower(title))
	assert.Contains(t, got, "tablet accessories")
}

func TestExtractProductAffidavitRejected(t *testing.T) {
	text := "I thereby affirm the device offered does not contain mercury or other hazardous substances in any amount.\n"
	assert.Equal(t, "", extractProduct(text, ""))
}

func TestExtractProductEmpty(t *testing.T) {
	assert.Equal(t, "", extractProduct("", ""))
	assert.Equal(t, "", extractProduct("nothing relevant here at all", ""))
}

func TestExtractProductFallback(t *testing.T) {
	text := "Product: Interactive flat panels\nQuantity: 40\n"
	assert.Equal(t, "Interactive flat panels", extractProductFallback(text, ""))

	// Fallback suppresses a candidate that duplicates the title.
	assert.Equal(t, "", extractProductFallback(text, "Interactive flat panels"))

	assert.Equal(t, "", extractProductFallback("no labels\n", ""))
}

func TestStripTitle(t *testing.T) {
	assert.Equal(t, "and carrying cases", stripTitle("Student Chromebooks and carrying cases", "Student Chromebooks"))
	assert.Equal(t, "unchanged", stripTitle("unchanged", ""))
	assert.Equal(t, "", stripTitle("Student Chromebooks", "Student Chromebooks"))
}

func TestContainsTitle(t *testing.T) {
	assert.True(t, containsTitle("STUDENT CHROMEBOOKS and cases", "Student Chromebooks"))
	assert.False(t, containsTitle("tablet accessories", "Student Chromebooks"))
	assert.False(t, containsTitle("anything", ""))
}
