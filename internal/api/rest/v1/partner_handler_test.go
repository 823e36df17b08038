//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/servicehub/internal/domain/documents"
	"github.com/MGTheTrain/servicehub/internal/domain/partners"
	"github.com/MGTheTrain/servicehub/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDealer() *partners.Dealer {
	now := time.Now().UTC()
	return &partners.Dealer{
		ID:            "5f0c6a0e-6f1d-4c9e-9a53-0e1b2c3d4e5f",
		UserID:        dealerPrincipal.UserID,
		BusinessName:  "Sharma Electricals",
		OwnerName:     "Ravi Sharma",
		City:          "Pune",
		State:         "Maharashtra",
		Pincode:       "411001",
		AccountStatus: partners.AccountPending,
		KYCStatus:     partners.KYCNotSubmitted,
		TrustScore:    partners.DefaultTrustScore,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func newPartnerHandlerWithMocks() (PartnerHandler, *MockDealerService, *MockTechnicianService, *MockDocumentService) {
	dealerService := new(MockDealerService)
	technicianService := new(MockTechnicianService)
	documentService := new(MockDocumentService)
	return NewPartnerHandler(dealerService, technicianService, documentService), dealerService, technicianService, documentService
}

func TestPartnerHandler_ListDealers_Filters(t *testing.T) {
	handler, dealerService, _, _ := newPartnerHandlerWithMocks()

	dealerService.On("List", mock.Anything, mock.MatchedBy(func(q *partners.DealerQuery) bool {
		return q.AccountStatus == partners.AccountPending && q.City == "Pune" && q.Limit == 10 && q.Offset == 20 && q.SortBy == "trust_score"
	})).Return([]*partners.Dealer{newTestDealer()}, int64(21), nil)

	c, w := newTestContext(t, http.MethodGet, "/admin/dealers?accountStatus=PENDING&city=Pune&limit=10&offset=20&sortBy=trust_score", "", adminPrincipal)
	handler.ListDealers(c)

	require.Equal(t, http.StatusOK, w.Code)
	var response ListResponse[DealerResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(21), response.Total)
	assert.Equal(t, 10, response.Limit)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "Sharma Electricals", response.Items[0].BusinessName)
	dealerService.AssertExpectations(t)
}

func TestPartnerHandler_GetDealerByID_NotFound(t *testing.T) {
	handler, dealerService, _, _ := newPartnerHandlerWithMocks()
	dealerService.On("GetByID", mock.Anything, "missing").Return(nil, apperror.NotFound("dealer", "missing"))

	c, w := newTestContext(t, http.MethodGet, "/admin/dealers/missing", "", adminPrincipal)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}
	handler.GetDealerByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartnerHandler_UpdateDealerStatus_InvalidTransition(t *testing.T) {
	handler, dealerService, _, _ := newPartnerHandlerWithMocks()
	dealer := newTestDealer()

	dealerService.On("UpdateAccountStatus", mock.Anything, adminPrincipal, dealer.ID, &partners.StatusChange{Status: "SUSPENDED"}).
		Return(nil, apperror.InvalidTransition("dealer account", partners.AccountPending, partners.AccountSuspended))

	c, w := newTestContext(t, http.MethodPatch, "/admin/dealers/"+dealer.ID+"/status", `{"status":"SUSPENDED"}`, adminPrincipal)
	c.Params = gin.Params{{Key: "id", Value: dealer.ID}}
	handler.UpdateDealerStatus(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	dealerService.AssertExpectations(t)
}

func TestPartnerHandler_UpdateDealerKYC_Success(t *testing.T) {
	handler, dealerService, _, _ := newPartnerHandlerWithMocks()
	dealer := newTestDealer()
	dealer.KYCStatus = partners.KYCVerified

	dealerService.On("UpdateKYCStatus", mock.Anything, adminPrincipal, dealer.ID, mock.Anything).Return(dealer, nil)

	c, w := newTestContext(t, http.MethodPatch, "/admin/dealers/"+dealer.ID+"/kyc", `{"status":"VERIFIED"}`, adminPrincipal)
	c.Params = gin.Params{{Key: "id", Value: dealer.ID}}
	handler.UpdateDealerKYC(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kycStatus":"VERIFIED"`)
}

func TestPartnerHandler_DeleteTechnicianByID(t *testing.T) {
	handler, _, technicianService, _ := newPartnerHandlerWithMocks()
	technicianService.On("DeleteByID", mock.Anything, adminPrincipal, "t-1").Return(nil)

	c, w := newTestContext(t, http.MethodDelete, "/admin/technicians/t-1", "", adminPrincipal)
	c.Params = gin.Params{{Key: "id", Value: "t-1"}}
	handler.DeleteTechnicianByID(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	technicianService.AssertExpectations(t)
}

func TestPartnerHandler_ListOwnTechnicians(t *testing.T) {
	handler, _, technicianService, _ := newPartnerHandlerWithMocks()
	dealerID := newTestDealer().ID

	technicianService.On("ListForDealer", mock.Anything, dealerPrincipal, mock.MatchedBy(func(q *partners.TechnicianQuery) bool {
		return q.Skill == "wiring"
	})).Return([]*partners.Technician{{ID: "t-1", DealerID: &dealerID, Skills: []string{"wiring"}}}, int64(1), nil)

	c, w := newTestContext(t, http.MethodGet, "/dealer/technicians?skill=wiring", "", dealerPrincipal)
	handler.ListOwnTechnicians(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"skills":["wiring"]`)
	technicianService.AssertExpectations(t)
}

func TestPartnerHandler_ListDealerDocuments(t *testing.T) {
	handler, _, _, documentService := newPartnerHandlerWithMocks()
	dealerID := newTestDealer().ID

	documentService.On("ListForOwner", mock.Anything, partners.TypeDealer, dealerID).Return([]*documents.DocumentMeta{
		{ID: "doc-1", OwnerType: partners.TypeDealer, OwnerID: dealerID, Kind: documents.KindPAN, Name: "pan.pdf", StorageKey: "kyc/dealer/x/doc-1", Encrypted: true},
	}, nil)

	c, w := newTestContext(t, http.MethodGet, "/admin/dealers/"+dealerID+"/documents", "", adminPrincipal)
	c.Params = gin.Params{{Key: "id", Value: dealerID}}
	handler.ListDealerDocuments(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"PAN"`)
	assert.NotContains(t, w.Body.String(), "kyc/dealer")
}
