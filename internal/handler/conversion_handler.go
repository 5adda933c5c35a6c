package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tourxls/internal/domain"
	"tourxls/internal/service"
	"tourxls/internal/xlsxexport"
)

// xlsxContentType is the MIME type for .xlsx workbooks.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ConversionHandler handles tour-list conversion endpoints.
type ConversionHandler struct {
	conversionService service.ConversionService
}

// NewConversionHandler creates a new ConversionHandler.
func NewConversionHandler(conversionService service.ConversionService) *ConversionHandler {
	return &ConversionHandler{conversionService: conversionService}
}

// previewResponse is the JSON body of a successful preview.
type previewResponse struct {
	Conversion *domain.ConversionResult `json:"conversion"`
	Columns    []string                 `json:"columns"`
	Filename   string                   `json:"filename"`
	Warning    string                   `json:"warning,omitempty"`
}

// Preview handles POST /api/v1/conversions/preview
// @Summary Convert a tour-list PDF and return the rows as JSON
// @Description Upload a tour-list PDF; responds with the parsed table and filter counts
// @Tags conversions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Tour-list PDF"
// @Param mode query string false "Extraction mode (auto, lines, columns)" default(auto)
// @Param merge_contact query bool false "Fold contact person into the company column"
// @Param remark_fallback query string false "Remark source when no article code matched (premarker, fulltext)"
// @Success 200 {object} APIResponse "Parsed table"
// @Failure 400 {object} APIResponse "Missing file or invalid parameters"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 422 {object} APIResponse "Unreadable document"
// @Router /conversions/preview [post]
func (h *ConversionHandler) Preview(c *gin.Context) {
	result, ok := h.convert(c)
	if !ok {
		return
	}

	resp := previewResponse{
		Conversion: result,
		Columns:    domain.Columns,
		Filename:   xlsxexport.BuildFilename(result.SourceName),
	}
	if result.RowsKept == 0 {
		resp.Warning = "no records found; the document may not match the expected tour-list layout"
	}
	RespondOK(c, resp)
}

// Export handles POST /api/v1/conversions/export
// @Summary Convert a tour-list PDF and download the spreadsheet
// @Description Upload a tour-list PDF; responds with a single-sheet .xlsx attachment
// @Tags conversions
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "Tour-list PDF"
// @Param mode query string false "Extraction mode (auto, lines, columns)" default(auto)
// @Param merge_contact query bool false "Fold contact person into the company column"
// @Param remark_fallback query string false "Remark source when no article code matched (premarker, fulltext)"
// @Success 200 {file} binary "Spreadsheet"
// @Failure 400 {object} APIResponse "Missing file or invalid parameters"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 422 {object} APIResponse "Unreadable document"
// @Router /conversions/export [post]
func (h *ConversionHandler) Export(c *gin.Context) {
	result, ok := h.convert(c)
	if !ok {
		return
	}

	data, err := xlsxexport.Write(&result.Table)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := xlsxexport.BuildFilename(result.SourceName)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Total-Records", strconv.Itoa(result.TotalRecords))
	c.Header("X-Rows-Kept", strconv.Itoa(result.RowsKept))
	c.Header("X-Rows-Dropped", strconv.Itoa(result.RowsDropped))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// convert runs the shared upload-and-convert path of both endpoints.
// On failure the error response has already been written.
func (h *ConversionHandler) convert(c *gin.Context) (*domain.ConversionResult, bool) {
	opts, err := parseConvertOptions(c)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		HandleError(c, domain.ErrMissingFile)
		return nil, false
	}
	defer func() { _ = file.Close() }()

	input := service.ConvertInput{
		File:    file,
		Header:  header,
		Options: opts,
	}
	result, err := h.conversionService.Convert(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return nil, false
	}
	return result, true
}

// parseConvertOptions extracts the policy override query parameters.
func parseConvertOptions(c *gin.Context) (service.ConvertOptions, error) {
	var opts service.ConvertOptions

	if modeStr := c.Query("mode"); modeStr != "" {
		mode := domain.ExtractStrategy(modeStr)
		if !domain.ValidStrategies[mode] {
			return opts, domain.ErrInvalidStrategy
		}
		opts.Mode = mode
	}

	if mergeStr := c.Query("merge_contact"); mergeStr != "" {
		merge, err := strconv.ParseBool(mergeStr)
		if err != nil {
			return opts, domain.ErrInvalidMergeOption
		}
		opts.MergeContact = &merge
	}

	if fbStr := c.Query("remark_fallback"); fbStr != "" {
		fb := domain.RemarkFallback(fbStr)
		if !domain.ValidRemarkFallbacks[fb] {
			return opts, domain.ErrInvalidRemarkOption
		}
		opts.RemarkFallback = fb
	}

	return opts, nil
}
