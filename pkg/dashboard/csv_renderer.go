package dashboard

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/homedash/homedash/internal/utils"
	log "github.com/sirupsen/logrus"
)

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

// RenderSummary writes one row per dashboard entry under a Section,Item,Date,Amount,Detail header.
func (t *CsvRendererImpl) RenderSummary(summary Summary) (string, error) {
	data := make([][]string, 0, 4+len(summary.UpcomingTasks)+len(summary.BillsDueSoon)+
		len(summary.RecentExpenses)+len(summary.Warranties))
	data = append(data,
		[]string{"Section", "Item", "Date", "Amount", "Detail"},
		[]string{"Summary", "Upcoming tasks", "", "", strconv.Itoa(summary.UpcomingTaskCount)},
		[]string{"Summary", "Bills due soon", "", "", strconv.Itoa(len(summary.BillsDueSoon))},
		[]string{"Summary", "Monthly expenses", utils.FormatDate(summary.GeneratedAt), summary.MonthlyExpenses.StringFixed(2), ""},
	)
	for _, t := range summary.UpcomingTasks {
		data = append(data, []string{"Upcoming task", t.Title, utils.FormatDate(t.Date), "", string(t.Type)})
	}
	for _, b := range summary.BillsDueSoon {
		data = append(data, []string{"Bill due soon", b.Name, utils.FormatDate(b.DueDate), b.Amount.StringFixed(2), b.Category})
	}
	for _, e := range summary.RecentExpenses {
		data = append(data, []string{"Recent expense", e.Title, utils.FormatDate(e.Date), e.Amount.StringFixed(2), e.Category})
	}
	for _, w := range summary.Warranties {
		data = append(data, []string{"Warranty", w.Warranty.Item, utils.FormatDate(w.Warranty.ExpiryDate), "", string(w.Status)})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
