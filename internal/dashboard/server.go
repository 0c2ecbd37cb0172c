package dashboard

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/ytcommunity/scraper/internal/domain"
)

// StartServer serves charts for a finished scrape artifact.
func StartServer(resultFile string, port string) error {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		result := loadResult(resultFile)

		// 1. Attachment Mix
		pie := charts.NewPie()
		pie.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{Title: "Post Attachment Mix"}),
			charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		)

		mix := map[string]int{}
		for _, p := range result.Posts {
			switch {
			case len(p.Images) > 0:
				mix["image"]++
			case len(p.Links) > 0:
				mix["link"]++
			default:
				mix["text only"]++
			}
		}

		var pieItems []opts.PieData
		for k, v := range mix {
			pieItems = append(pieItems, opts.PieData{Name: k, Value: v})
		}
		pie.AddSeries("Posts", pieItems)

		// 2. Replies per Post
		bar := charts.NewBar()
		bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Replies per Post"}))

		var barX []string
		var barY []opts.BarData
		for _, p := range result.Posts {
			replies, _ := strconv.Atoi(p.CommentsCount)
			barX = append(barX, p.PostID)
			barY = append(barY, opts.BarData{Value: replies})
		}
		bar.SetXAxis(barX).AddSeries("Replies", barY)

		pie.Render(w)
		bar.Render(w)
	})

	return http.ListenAndServe(":"+port, nil)
}

func loadResult(path string) domain.ScrapeResult {
	var result domain.ScrapeResult
	data, err := os.ReadFile(path)
	if err != nil {
		return result
	}
	json.Unmarshal(data, &result)
	return result
}
