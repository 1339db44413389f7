package handler

import (
	"errors"
	"io"
	"net/http"

	"backend/internal/importer"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps an uploaded workbook at 32 MiB.
const maxUploadBytes = 32 << 20

type UploadHandler struct {
	importService service.ImportService
}

func NewUploadHandler(importService service.ImportService) *UploadHandler {
	return &UploadHandler{importService: importService}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	uploads := router.Group("/api/uploads")
	{
		uploads.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleAnalyst), h.Upload)
		uploads.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleAnalyst, model.RoleViewer), h.ListUploads)
	}
}

// Upload ingests one xlsx workbook of customs shipment records
// @Summary      Upload a shipment spreadsheet
// @Description  Parses an xlsx export of customs shipment records, normalizes every row and stores it under the given category. Returns per-row counts and the headers discovered in the file.
// @Tags         uploads
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file    true   "xlsx workbook"
// @Param        category  formData  string  true   "Category tag (fruits, vegetables, spices, grains, seafood)"
// @Param        dry_run   formData  bool    false  "Resolve and count without persisting"
// @Success      200  {object}  response.Response{data=importer.ImportSummary}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Missing file: "+err.Error()))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "File too large"))
		return
	}

	category := c.PostForm("category")
	dryRun := c.PostForm("dry_run") == "true"

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unreadable file: "+err.Error()))
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Unreadable file: "+err.Error()))
		return
	}

	userID, _ := c.Get("userID")
	uid, _ := userID.(string)

	summary, err := h.importService.ImportWorkbook(c.Request.Context(), service.UploadRequest{
		FileName: fileHeader.Filename,
		Data:     data,
		Category: category,
		DryRun:   dryRun,
		UserID:   uid,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, importer.ErrNoRows) || errors.Is(err, importer.ErrUnknownCategory) {
			status = http.StatusBadRequest
		}
		c.JSON(status, response.Error(status, "Import failed: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}

// ListUploads returns recent import runs
// @Summary      List upload batches
// @Description  Retrieves a paginated history of import runs with their row counts
// @Tags         uploads
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200  {object}  response.Response{data=object}
// @Failure      500  {object}  response.Response
// @Router       /api/uploads [get]
func (h *UploadHandler) ListUploads(c *gin.Context) {
	params := pagination.Parse(c)

	uploads, total, err := h.importService.ListUploads(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve uploads: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Page(http.StatusOK, uploads, params.Meta(total)))
}
