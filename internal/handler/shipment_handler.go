package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type ShipmentHandler struct {
	shipmentService service.ShipmentService
}

func NewShipmentHandler(shipmentService service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipmentService: shipmentService}
}

func (h *ShipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	shipments := router.Group("/api/shipments")
	{
		shipments.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleAnalyst, model.RoleViewer), h.ListShipments)
	}
}

// ListShipments returns a filtered page of shipment records
// @Summary      List shipments
// @Description  Retrieves a paginated list of normalized shipment records, filterable by category, exporter, consignee, HS-code prefix, month and batch tag
// @Tags         shipments
// @Security     BearerAuth
// @Produce      json
// @Param        page       query  int     false  "Page number (default 1)"
// @Param        limit      query  int     false  "Number of items per page (default 20)"
// @Param        category   query  string  false  "Category tag"
// @Param        exporter   query  string  false  "Exporter name (substring)"
// @Param        consignee  query  string  false  "Consignee name (substring)"
// @Param        hs_prefix  query  string  false  "HS code prefix"
// @Param        month      query  string  false  "Month bucket (YYYY-MM)"
// @Param        batch_tag  query  string  false  "Upload batch tag"
// @Success      200  {object}  response.Response{data=object}
// @Failure      500  {object}  response.Response
// @Router       /api/shipments [get]
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	params := pagination.Parse(c)
	filter := repository.ShipmentFilter{
		Category:  c.Query("category"),
		Exporter:  c.Query("exporter"),
		Consignee: c.Query("consignee"),
		HsPrefix:  c.Query("hs_prefix"),
		MonthYear: c.Query("month"),
		BatchTag:  c.Query("batch_tag"),
	}

	shipments, total, err := h.shipmentService.List(c.Request.Context(), filter, params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve shipments: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Page(http.StatusOK, shipments, params.Meta(total)))
}
