package rest

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/enayetchefonline/partner-gateway/internal/shared/daterange"
)

// rangeFromQuery resolves the date window for listing endpoints. Callers pass
// either ?preset=Last 7 Days or explicit ?from=01/08/2026&to=31/08/2026 in
// DD/MM/YYYY. With neither present the window defaults to the given preset.
func rangeFromQuery(c *gin.Context, fallback daterange.Preset) (daterange.Range, error) {
	from := c.Query("from")
	to := c.Query("to")
	if from != "" || to != "" {
		if from == "" || to == "" {
			return daterange.Range{}, fmt.Errorf("both from and to are required for a custom range")
		}
		start, err := time.ParseInLocation(daterange.LegacyLayout, from, time.Local)
		if err != nil {
			return daterange.Range{}, fmt.Errorf("invalid from date %q: expected DD/MM/YYYY", from)
		}
		end, err := time.ParseInLocation(daterange.LegacyLayout, to, time.Local)
		if err != nil {
			return daterange.Range{}, fmt.Errorf("invalid to date %q: expected DD/MM/YYYY", to)
		}
		return daterange.NewRange(start, end)
	}

	preset := fallback
	if name := c.Query("preset"); name != "" {
		parsed, ok := daterange.ParsePreset(name)
		if !ok {
			return daterange.Range{}, fmt.Errorf("unknown preset %q", name)
		}
		preset = parsed
	}
	return daterange.Resolve(preset, time.Now())
}

// hasRangeFilter reports whether the request narrows the listing window at
// all. Some listings treat an unfiltered request as "let the backend pick",
// not as a preset default.
func hasRangeFilter(c *gin.Context) bool {
	return c.Query("from") != "" || c.Query("to") != "" || c.Query("preset") != ""
}
