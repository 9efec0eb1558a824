package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wkalungi/sponsorbase/internal/app/importer"
	"github.com/wkalungi/sponsorbase/internal/app/models"
	"github.com/wkalungi/sponsorbase/internal/app/models/dto"
	"github.com/wkalungi/sponsorbase/internal/app/services"
	"github.com/wkalungi/sponsorbase/internal/middleware"
	"github.com/wkalungi/sponsorbase/internal/pkg/filestorage"
	"github.com/wkalungi/sponsorbase/internal/pkg/helpers"
)

// ChildController handles child record operations, bulk import included
type ChildController struct {
	childService   services.ChildService
	importer       *importer.Importer
	storage        *filestorage.LocalStorage
	maxImportBytes int64
}

// NewChildController creates a new ChildController
func NewChildController(childService services.ChildService, imp *importer.Importer, storage *filestorage.LocalStorage, maxImportBytes int64) *ChildController {
	return &ChildController{
		childService:   childService,
		importer:       imp,
		storage:        storage,
		maxImportBytes: maxImportBytes,
	}
}

// CreateChild handles child registration
// @Summary Register a child
// @Description Registers a single child record. Only the full name is required.
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.Child true "Child information"
// @Success 201 {object} dto.APIResponse{data=models.Child} "Child registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children [post]
func (c *ChildController) CreateChild(ctx *gin.Context) {
	var child models.Child
	if err := ctx.ShouldBindJSON(&child); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid child data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.childService.CreateChild(ctx, &child)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      created,
		Timestamp: time.Now(),
	})
}

// GetChildByID retrieves a child by ID
// @Summary Get child details
// @Description Retrieves a child record by its ID
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Child} "Child retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid child ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children/{id} [get]
func (c *ChildController) GetChildByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Child ID")
	if !ok {
		return
	}

	child, err := c.childService.GetChildByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      child,
		Timestamp: time.Now(),
	})
}

// ListChildren retrieves a paginated list of children
// @Summary List children
// @Description Retrieves children with optional name search and pagination
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Name substring to search for"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ChildListResponse} "Children retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children [get]
func (c *ChildController) ListChildren(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	search := ctx.Query("search")

	children, total, err := c.childService.ListChildren(ctx, search, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ChildListResponse{
			Children:   children,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateChild updates an existing child record
// @Summary Update a child
// @Description Updates an existing child record with new information
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID" Format(int64) minimum(1)
// @Param request body models.Child true "Updated child information"
// @Success 200 {object} dto.APIResponse{data=models.Child} "Child updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children/{id} [put]
func (c *ChildController) UpdateChild(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Child ID")
	if !ok {
		return
	}

	var child models.Child
	if err := ctx.ShouldBindJSON(&child); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid child data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	child.ID = id

	if err := c.childService.UpdateChild(ctx, &child); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      child,
		Timestamp: time.Now(),
	})
}

// UploadChildAvatar stores a profile photo for a child
// @Summary Upload child photo
// @Description Uploads a profile photo for a child and stores its path
// @Tags children
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID" Format(int64) minimum(1)
// @Param avatar formData file true "Profile photo"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Photo uploaded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children/{id}/avatar [post]
func (c *ChildController) UploadChildAvatar(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Child ID")
	if !ok {
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing avatar file")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	path, err := c.storage.SaveFile(fileHeader, "avatars")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.childService.UpdateChildAvatar(ctx, id, path); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Photo uploaded successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteChild deletes a child record
// @Summary Delete a child
// @Description Deletes a child record. Related sponsorships are removed as well.
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Child deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid child ID format"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children/{id} [delete]
func (c *ChildController) DeleteChild(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Child ID")
	if !ok {
		return
	}

	if err := c.childService.DeleteChild(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Child deleted successfully"},
		Timestamp: time.Now(),
	})
}

// DeleteAllChildren wipes the children register
// @Summary Delete all children
// @Description Deletes every child record, typically before re-importing a corrected master list
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Children deleted successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children [delete]
func (c *ChildController) DeleteAllChildren(ctx *gin.Context) {
	deleted, err := c.childService.DeleteAllChildren(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Deleted " + strconv.FormatInt(deleted, 10) + " children"},
		Timestamp: time.Now(),
	})
}

// ImportChildren bulk-imports children from a spreadsheet
// @Summary Import children from a spreadsheet
// @Description Imports every data row of the uploaded workbook's first sheet in a single transaction. Rows with an empty first cell are skipped; rows that cannot be mapped are reported without aborting the import.
// @Tags children
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Workbook (.xlsx)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResultResponse} "Import completed"
// @Failure 400 {object} dto.ErrorResponse "Missing file or malformed workbook"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Import failed, no rows were written"
// @Router /children/import [post]
func (c *ChildController) ImportChildren(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing workbook file")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if c.maxImportBytes > 0 && fileHeader.Size > c.maxImportBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Workbook file too large")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Could not read workbook file")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	defer file.Close()

	result, err := c.importer.ImportChildren(ctx, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	faults := make([]dto.ImportRowFault, 0, len(result.Invalid))
	for _, f := range result.Invalid {
		faults = append(faults, dto.ImportRowFault{Row: f.Row, Reason: f.Reason})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.ImportResultResponse{
			Imported: result.Imported,
			Skipped:  result.Skipped,
			Invalid:  faults,
		},
		Timestamp: time.Now(),
	})
}

// parseIDParam extracts the :id path parameter as a positive int64.
func parseIDParam(ctx *gin.Context, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+label)
		errorDetail = errorDetail.WithDetails(label + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
