package financesync

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/gin-gonic/gin"
)

// SyncHandler runs the on-demand reconciliation and returns the combined
// report. Re-running is always safe; already-posted records are skipped.
func SyncHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		run, report, err := RunFinanceSync(ctx, models.SyncTriggeredManual)
		if err != nil {
			config.LogError(config.GetLogger(), "financesync", "SyncHandler", "RunFinanceSync", nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"run":    run,
			"report": report,
		})
	}
}

func StatsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
		if err != nil || year <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}

		stats, err := GetFinanceStats(c.Request.Context(), year)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

func ExpensesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, page := pagingParams(c)

		expenses, total, err := models.PaginateAssetExpenses(c.Request.Context(), limit, page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":  expenses,
			"total": total,
			"limit": limit,
			"page":  page,
		})
	}
}

func ExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(time.Now().Year())))
		if err != nil || year <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}

		workbook, err := BuildExpenseWorkbook(c.Request.Context(), year)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		filename := fmt.Sprintf("asset-expenses-%d.xlsx", year)
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := workbook.Write(c.Writer); err != nil {
			config.LogError(config.GetLogger(), "financesync", "ExportHandler", "workbook.Write", filename, err)
		}
	}
}

func SyncRunsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, page := pagingParams(c)

		runs, total, err := models.PaginateFinanceSyncRuns(c.Request.Context(), limit, page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":  runs,
			"total": total,
			"limit": limit,
			"page":  page,
		})
	}
}

func SyncRunErrorsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		runId, err := strconv.Atoi(c.Param("id"))
		if err != nil || runId <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sync run id"})
			return
		}

		errs, err := models.GetFinanceSyncErrors(c.Request.Context(), runId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": errs})
	}
}

func pagingParams(c *gin.Context) (int, int) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(config.SearchLimit)))
	if err != nil || limit <= 0 {
		limit = config.SearchLimit
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page <= 0 {
		page = 1
	}
	return limit, page
}
