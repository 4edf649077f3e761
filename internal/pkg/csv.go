package pkg

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// WriteCSV streams a CSV document with the given fixed header row and offers
// it as a download named <resource>-export-<ISO-date>.csv. Field quoting and
// escaping follow encoding/csv (RFC 4180 double-quote escaping).
func WriteCSV(c *gin.Context, resource string, header []string, rows [][]string) error {
	filename := fmt.Sprintf("%s-export-%s.csv", resource, time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
