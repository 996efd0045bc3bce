package timesheet

import (
	"net/http"

	"axiapac.com/timesheets/core"
	"axiapac.com/timesheets/model"
	web "axiapac.com/timesheets/web/common"
	"github.com/gin-gonic/gin"
)

type SearchParams struct {
	Status    string `form:"status"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Page      *int   `form:"page" binding:"omitempty,min=1"`
	Limit     *int   `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Query converts the raw params. An unknown status or a malformed date is an error.
func (p SearchParams) Query() (core.TimesheetQuery, string) {
	var q core.TimesheetQuery

	if p.Status != "" && p.Status != "all" {
		status, ok := model.ParseStatus(p.Status)
		if !ok {
			return q, "Invalid status " + p.Status
		}
		q.Status = &status
	}

	var start, end web.DateOnly
	if err := start.UnmarshalParam(p.StartDate); err != nil {
		return q, "startDate: " + err.Error()
	}
	if err := end.UnmarshalParam(p.EndDate); err != nil {
		return q, "endDate: " + err.Error()
	}
	q.From = start.TimePtr()
	q.To = end.TimePtr()

	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Limit != nil {
		q.Limit = *p.Limit
	}
	return q.Normalize(), ""
}

func (ep *Endpoint) Search(c *gin.Context) {
	var params SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	q, problem := params.Query()
	if problem != "" {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(problem))
		return
	}

	page, err := ep.timesheets.List(c.Request.Context(), q)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, web.NewSearchResponse(page))
}
