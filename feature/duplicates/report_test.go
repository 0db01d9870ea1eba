package duplicates

import (
	"context"
	"strings"
	"testing"

	"backpack-manager/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "*********\n|| Hey ||\n*********", Title("Hey"))
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "\nAbc [2]\n=======", Underline("\nAbc [2]", "="))
	assert.Equal(t, "Melee\n-----", Underline("Melee", "-"))
}

func TestPrependLines(t *testing.T) {
	assert.Equal(t, "\ta\n\tb", PrependLines("a\nb", "\t"))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.33", FormatValue(reconcile.Convert(3).Value))
	assert.Equal(t, "1.00", FormatValue(reconcile.Convert(9).Value))
	assert.Equal(t, "0.00", FormatValue(0))
}

func TestFormatBreakdown(t *testing.T) {
	assert.Equal(t, "1 ref, 1 scrap", FormatBreakdown(reconcile.Convert(10)))
	assert.Equal(t, "2 rec", FormatBreakdown(reconcile.Convert(6)))
	assert.Empty(t, FormatBreakdown(reconcile.Convert(0)))
}

func TestReport_WriteText_Lists(t *testing.T) {
	svc, _ := newTestService(t)
	report, err := svc.Run(context.Background(), Request{Accounts: []string{"robin"}, List: true})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, report.WriteText(&b))
	out := b.String()

	assert.Contains(t, out, Title("Duplicate Lists"))
	assert.Contains(t, out, "\nDuplicates by name [4]\n======================\n")
	assert.Contains(t, out, "|_|    | The Equalizer\n")
	assert.Contains(t, out, "|_||_| | The Force-A-Nature\n")
	assert.Contains(t, out, "|_|    | The Sandman\n")

	// Scout is listed before Soldier, primary before melee.
	scout := strings.Index(out, tab+"Scout\n")
	soldier := strings.Index(out, tab+"Soldier\n")
	require.NotEqual(t, -1, scout)
	require.NotEqual(t, -1, soldier)
	assert.Less(t, scout, soldier)
	assert.Contains(t, out, tab+tab+"Primary\n"+tab+tab+"-------\n"+tab+tab+tab+"2| The Force-A-Nature\n")

	assert.NotContains(t, out, "Calculating scrap")
}

func TestReport_WriteText_FriendsAndScrap(t *testing.T) {
	svc, _ := newTestService(t)
	report, err := svc.Run(context.Background(), Request{
		Accounts: []string{"robin"},
		Friends:  []string{"alex"},
		Scrap:    true,
	})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, report.WriteText(&b))
	out := b.String()

	assert.Contains(t, out, "\nAlex [2]\n========\n")
	assert.Contains(t, out, "\tScout\n\t=====\n\t\tThe Force-A-Nature\n")
	assert.Contains(t, out, "\tSoldier\n\t=======\n\t\tThe Equalizer\n")

	assert.Contains(t, out, Title("Calculating scrap"))
	assert.Contains(t, out, "The Force-A-Nature + The Sandman\n")
	assert.Contains(t, out, "0.11 ref\n1 scrap\n")
	assert.Contains(t, out, "\nRemaining Duplicates [0]\n")
	assert.NotContains(t, out, "Duplicate Lists")
}

func TestReport_WriteText_NoCraft(t *testing.T) {
	svc, _ := newTestService(t)
	report, err := svc.Run(context.Background(), Request{Accounts: []string{"alex"}, Scrap: true})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, report.WriteText(&b))
	assert.Contains(t, b.String(), "No crafting possible\n")
}
