package handler

import (
	"net/http"
	"strconv"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	read := middleware.RequireRole(model.RoleAdmin, model.RoleAnalyst, model.RoleViewer)
	analytics := router.Group("/api/analytics")
	{
		analytics.GET("/competitors", read, h.Competitors)
		analytics.GET("/clients", read, h.Clients)
		analytics.GET("/monthly", read, h.Monthly)
		analytics.GET("/cross-sell", read, h.CrossSell)
	}
}

func parseAnalyticsFilter(c *gin.Context) service.AnalyticsFilter {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return service.AnalyticsFilter{
		Category:  c.Query("category"),
		HsPrefix:  c.Query("hs_prefix"),
		FromMonth: c.Query("from"),
		ToMonth:   c.Query("to"),
		Limit:     limit,
	}
}

// Competitors ranks exporters for competitor tracking
// @Summary      Competitor ranking
// @Description  Ranks exporters by total FOB value within a category, HS prefix and month range
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        category   query  string  false  "Category tag"
// @Param        hs_prefix  query  string  false  "HS code prefix"
// @Param        from       query  string  false  "First month bucket (YYYY-MM), default 12 months back"
// @Param        to         query  string  false  "Last month bucket (YYYY-MM), default current month"
// @Param        limit      query  int     false  "Ranking size (default 10)"
// @Success      200  {object}  response.Response{data=object}
// @Failure      500  {object}  response.Response
// @Router       /api/analytics/competitors [get]
func (h *AnalyticsHandler) Competitors(c *gin.Context) {
	rankings, err := h.analyticsService.Competitors(c.Request.Context(), parseAnalyticsFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{"competitors": rankings}))
}

// Clients ranks consignees for client tracking
// @Summary      Client ranking
// @Description  Ranks consignees by total FOB value within a category, HS prefix and month range
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        category   query  string  false  "Category tag"
// @Param        hs_prefix  query  string  false  "HS code prefix"
// @Param        from       query  string  false  "First month bucket (YYYY-MM)"
// @Param        to         query  string  false  "Last month bucket (YYYY-MM)"
// @Param        limit      query  int     false  "Ranking size (default 10)"
// @Success      200  {object}  response.Response{data=object}
// @Failure      500  {object}  response.Response
// @Router       /api/analytics/clients [get]
func (h *AnalyticsHandler) Clients(c *gin.Context) {
	rankings, err := h.analyticsService.Clients(c.Request.Context(), parseAnalyticsFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{"clients": rankings}))
}

// Monthly returns month-over-month aggregate buckets
// @Summary      Monthly trends
// @Description  Month-over-month shipment counts, quantities and FOB totals for a filter
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        category   query  string  false  "Category tag"
// @Param        hs_prefix  query  string  false  "HS code prefix"
// @Param        from       query  string  false  "First month bucket (YYYY-MM)"
// @Param        to         query  string  false  "Last month bucket (YYYY-MM)"
// @Success      200  {object}  response.Response{data=object}
// @Failure      500  {object}  response.Response
// @Router       /api/analytics/monthly [get]
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	trends, err := h.analyticsService.Monthly(c.Request.Context(), parseAnalyticsFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{"monthly": trends}))
}

// CrossSell discovers products a consignee does not buy yet
// @Summary      Cross-sell report
// @Description  For one consignee and category: the products they already buy, against the category's top products they do not buy from anyone
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        consignee  query  string  true   "Consignee name"
// @Param        category   query  string  true   "Category tag"
// @Param        limit      query  int     false  "Untapped products to return (default 10)"
// @Success      200  {object}  response.Response{data=model.CrossSellReport}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/analytics/cross-sell [get]
func (h *AnalyticsHandler) CrossSell(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	report, err := h.analyticsService.CrossSell(c.Request.Context(), c.Query("consignee"), c.Query("category"), limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, report))
}
