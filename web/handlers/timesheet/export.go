package timesheet

import (
	"fmt"
	"net/http"

	"axiapac.com/timesheets/service"
	web "axiapac.com/timesheets/web/common"
	"github.com/gin-gonic/gin"
)

func (ep *Endpoint) Export(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	export, err := ep.timesheets.Export(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	writeWorkbook(c, export)
}

func writeWorkbook(c *gin.Context, export *service.Export) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.FileName))
	c.Data(http.StatusOK, service.XlsxContentType, export.Data)
}

func (ep *Endpoint) Archive(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	res, err := ep.timesheets.Archive(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ep *Endpoint) Archives(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	list, err := ep.timesheets.Archives(c.Request.Context(), id)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ArchivedExport streams one archived workbook back to the client.
func (ep *Endpoint) ArchivedExport(c *gin.Context) {
	id, ok := requireID(c)
	if !ok {
		return
	}

	export, err := ep.timesheets.ArchivedExport(c.Request.Context(), id, c.Param("name"))
	if err != nil {
		web.AbortWithError(c, err)
		return
	}
	writeWorkbook(c, export)
}
