package handlers

import (
	"fmt"
	"net/http"
	"time"

	"case_desk_app_go/db"
	"case_desk_app_go/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportCasesWorkbook serves the Cases and Court Dates workbook
func ExportCasesWorkbook(c echo.Context) error {
	buf, err := services.GenerateCaseWorkbook(db.DB)
	if err != nil {
		return respondError(c, err, "generate workbook")
	}

	filename := fmt.Sprintf("cases_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+filename)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// DocketPDF renders the upcoming court dates as a printable docket
func DocketPDF(c echo.Context) error {
	now := time.Now()
	dates, err := services.GetUpcomingCourtDates(db.DB, now)
	if err != nil {
		return respondError(c, err, "fetch upcoming court dates")
	}

	options := services.DefaultPDFOptions(getConfig(c).ChromePath)
	pdf, err := services.GenerateDocketPDF(c.Request().Context(), dates, now.In(officeLocation(c)), options)
	if err != nil {
		return respondError(c, err, "generate docket")
	}

	filename := fmt.Sprintf("docket_%s.pdf", now.Format("20060102"))
	c.Response().Header().Set("Content-Disposition", "inline; filename="+filename)
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// DocketCalendar serves the upcoming court dates as an iCalendar feed
func DocketCalendar(c echo.Context) error {
	now := time.Now()
	dates, err := services.GetUpcomingCourtDates(db.DB, now)
	if err != nil {
		return respondError(c, err, "fetch upcoming court dates")
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=docket.ics")
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", services.GenerateDocketICS(dates, now))
}
