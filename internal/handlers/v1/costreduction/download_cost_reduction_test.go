package costreduction

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/procurement-reports/internal/report"
	"github.com/carson-networks/procurement-reports/internal/service"
	"github.com/carson-networks/procurement-reports/internal/spreadsheet"
)

type mockCostReductionExporter struct {
	mock.Mock
}

func (m *mockCostReductionExporter) CostReductionWorkbook(ctx context.Context, vendor string, layout report.Layout) (*service.Workbook, error) {
	args := m.Called(ctx, vendor, layout)
	wb, _ := args.Get(0).(*service.Workbook)
	return wb, args.Error(1)
}

func newDownloadTestAPI(t *testing.T, svc costReductionExporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDownloadCostReductionHandler(svc).Register(api)
	return api
}

func testWorkbook() *service.Workbook {
	return &service.Workbook{
		Filename:    report.CostReductionFilename,
		ContentType: spreadsheet.ContentType,
		Data:        []byte("PK\x03\x04xlsx"),
	}
}

// -- HTTP integration tests --

func TestHTTP_DownloadCostReduction_Success(t *testing.T) {
	mockSvc := new(mockCostReductionExporter)
	mockSvc.On("CostReductionWorkbook", mock.Anything, "V100", report.LayoutMaterial).Return(testWorkbook(), nil)

	resp := newDownloadTestAPI(t, mockSvc).Get("/downloadCostReduction?vendor=V100")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, spreadsheet.ContentType, resp.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=cost_reduction.xlsx", resp.Header().Get("Content-Disposition"))
	assert.Equal(t, []byte("PK\x03\x04xlsx"), resp.Body.Bytes())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DownloadCostReduction_VendorLayout(t *testing.T) {
	mockSvc := new(mockCostReductionExporter)
	mockSvc.On("CostReductionWorkbook", mock.Anything, "V100", report.LayoutVendor).Return(testWorkbook(), nil)

	resp := newDownloadTestAPI(t, mockSvc).Get("/downloadCostReduction?vendor=V100&layout=vendor")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DownloadCostReduction_InvalidLayout(t *testing.T) {
	mockSvc := new(mockCostReductionExporter)

	// Huma's enum validation rejects this before the handler runs.
	resp := newDownloadTestAPI(t, mockSvc).Get("/downloadCostReduction?vendor=V100&layout=commodity")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CostReductionWorkbook")
}

func TestHTTP_DownloadCostReduction_EncodingFailure(t *testing.T) {
	mockSvc := new(mockCostReductionExporter)
	mockSvc.On("CostReductionWorkbook", mock.Anything, "V100", report.LayoutMaterial).
		Return(nil, fmt.Errorf("%w: bad cell", spreadsheet.ErrEncodingFailure))

	resp := newDownloadTestAPI(t, mockSvc).Get("/downloadCostReduction?vendor=V100")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotEqual(t, spreadsheet.ContentType, resp.Header().Get("Content-Type"))
	assert.Empty(t, resp.Header().Get("Content-Disposition"))
	mockSvc.AssertExpectations(t)
}
