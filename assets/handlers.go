package assets

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/aspal-sistemas/parksys_backend/config"
	"github.com/aspal-sistemas/parksys_backend/financesync"
	"github.com/aspal-sistemas/parksys_backend/models"
	"github.com/aspal-sistemas/parksys_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func ParksHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		parks, err := models.GetParks(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": parks})
	}
}

// CreateAssetHandler records an asset and fires the purchase posting as a
// side effect. The posting result never decides the response status: when
// posting fails the asset is still created and the response flags the entry
// as deferred, to be backfilled by the next finance sync run.
func CreateAssetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewAsset
		if err := c.ShouldBindJSON(&input); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		ctx := c.Request.Context()
		asset, err := models.CreateAsset(ctx, &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entry, postErr := financesync.SyncAssetPurchase(ctx, asset)
		if postErr != nil {
			config.LogError(config.GetLogger(), "assets", "CreateAssetHandler", "SyncAssetPurchase", asset.ID, postErr)
		}

		c.JSON(http.StatusCreated, gin.H{
			"asset":           asset,
			"expense":         entry,
			"expense_pending": postErr != nil,
		})
	}
}

func UpdateAssetHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid asset id"})
			return
		}

		var input models.NewAsset
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
			return
		}

		asset, err := models.UpdateAsset(c.Request.Context(), id, &input)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"asset": asset})
	}
}

func ListAssetsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, page := pagingParams(c)

		var parkId *int
		if v, err := strconv.Atoi(c.Query("park_id")); err == nil && v > 0 {
			parkId = &v
		}

		assets, total, err := models.PaginateAssets(c.Request.Context(), limit, page, parkId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":  assets,
			"total": total,
			"limit": limit,
			"page":  page,
		})
	}
}

func CreateMaintenanceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewMaintenance
		if err := c.ShouldBindJSON(&input); err != nil {
			var validationErrors validator.ValidationErrors
			if errors.As(err, &validationErrors) {
				c.JSON(http.StatusBadRequest, gin.H{"errors": utils.ProcessValidationErrors(err)})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		maintenance, err := models.CreateMaintenance(c.Request.Context(), &input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"maintenance": maintenance})
	}
}

type completeMaintenanceRequest struct {
	CompletedDate *time.Time       `json:"completed_date"`
	Cost          *decimal.Decimal `json:"cost"`
}

// CompleteMaintenanceHandler transitions a work order to Completed and fires
// the maintenance posting. Same decoupling as asset creation: the completion
// always stands, a failed posting is deferred to the next sync run.
func CompleteMaintenanceHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maintenance id"})
			return
		}

		// An empty body is fine: the completion date defaults to now and
		// the recorded cost stands.
		var req completeMaintenanceRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		ctx := c.Request.Context()
		maintenance, err := models.CompleteMaintenance(ctx, id, req.CompletedDate, req.Cost)
		if err != nil {
			if errors.Is(err, utils.ErrorRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "maintenance not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		entry, postErr := financesync.SyncMaintenance(ctx, maintenance)
		if postErr != nil {
			config.LogError(config.GetLogger(), "assets", "CompleteMaintenanceHandler", "SyncMaintenance", maintenance.ID, postErr)
		}

		c.JSON(http.StatusOK, gin.H{
			"maintenance":     maintenance,
			"expense":         entry,
			"expense_pending": postErr != nil,
		})
	}
}

func ListMaintenancesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, page := pagingParams(c)

		var assetId *int
		if v, err := strconv.Atoi(c.Query("asset_id")); err == nil && v > 0 {
			assetId = &v
		}
		var status *models.MaintenanceStatus
		if s := c.Query("status"); s != "" {
			ms := models.MaintenanceStatus(s)
			status = &ms
		}

		maintenances, total, err := models.PaginateMaintenances(c.Request.Context(), limit, page, assetId, status)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":  maintenances,
			"total": total,
			"limit": limit,
			"page":  page,
		})
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
