package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/obsidianco/lead-capture/internal/entity"
	"github.com/obsidianco/lead-capture/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, table string, lead *entity.Lead) error {
	args := m.Called(ctx, table, lead)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(verticalID, to, firstName string) {
	m.Called(verticalID, to, firstName)
}

func mustVertical(t *testing.T, id string) entity.Vertical {
	t.Helper()
	v, ok := entity.VerticalByID(id)
	assert.True(t, ok)
	return v
}

func TestCaptureLeadFreshEmailSuccess(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEmail := new(MockEmailService)

	var saved *entity.Lead
	mockRepo.On("Insert", ctx, "ecom_leads", mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(2).(*entity.Lead)
	}).Return(nil)
	mockEmail.On("SendWelcome", "ecom", "jane@shop.io", "Jane").Return()

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockEmail)

	output, err := uc.Execute(ctx, mustVertical(t, "ecom"), usecase.SubmitInput{
		Email:     "  Jane@Shop.IO ",
		FirstName: " Jane ",
		UTMSource: "google",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEmpty(t, output.LeadID)
	assert.False(t, output.Duplicate)

	// Persisted lead carries the normalized email and the vertical default
	// landing path.
	assert.Equal(t, "jane@shop.io", saved.Email)
	assert.Equal(t, "Jane", saved.FirstName)
	assert.Equal(t, "/ecom-checklist/", saved.LandingPath)
	assert.Equal(t, "google", saved.UTMSource)
	assert.False(t, saved.CreatedAt.IsZero())

	mockEmail.AssertCalled(t, "SendWelcome", "ecom", "jane@shop.io", "Jane")
}

func TestCaptureLeadMissingFieldsRejected(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEmail := new(MockEmailService)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockEmail)

	output, err := uc.Execute(ctx, mustVertical(t, "ecom"), usecase.SubmitInput{
		Email: "jane@shop.io",
		// firstName absent
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "firstName")

	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
	mockEmail.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaptureLeadFashionRequiresQualifyingFields(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil)

	_, err := uc.Execute(ctx, mustVertical(t, "fashion"), usecase.SubmitInput{
		Email:     "anna@brand.com",
		FirstName: "Anna",
		Website:   "https://brand.com",
		// adSpend, monthlyRevenue, growthChallenge absent
	})

	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "adSpend")
	assert.Contains(t, err.Error(), "monthlyRevenue")
	assert.Contains(t, err.Error(), "growthChallenge")
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaptureLeadPersonalEmailRejectedOnFashion(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEmail := new(MockEmailService)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockEmail)

	output, err := uc.Execute(ctx, mustVertical(t, "fashion"), usecase.SubmitInput{
		Email:           "Anna@GMAIL.com",
		FirstName:       "Anna",
		Website:         "https://brand.com",
		AdSpend:         "10k-50k",
		MonthlyRevenue:  "100k+",
		GrowthChallenge: "scaling",
	})

	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "work email")
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaptureLeadPersonalEmailAllowedOnEcom(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)

	mockRepo.On("Insert", ctx, "ecom_leads", mock.Anything).Return(nil)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil)

	output, err := uc.Execute(ctx, mustVertical(t, "ecom"), usecase.SubmitInput{
		Email:     "jane@gmail.com",
		FirstName: "Jane",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
}

func TestCaptureLeadDuplicateWithoutResend(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEmail := new(MockEmailService)

	mockRepo.On("Insert", ctx, "ecom_leads", mock.Anything).Return(entity.ErrEmailAlreadyExists)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockEmail)

	output, err := uc.Execute(ctx, mustVertical(t, "ecom"), usecase.SubmitInput{
		Email:     "jane@shop.io",
		FirstName: "Jane",
	})

	assert.NoError(t, err)
	assert.True(t, output.Duplicate)
	mockEmail.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaptureLeadDuplicateResendsOnBeauty(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEmail := new(MockEmailService)

	mockRepo.On("Insert", ctx, "beauty_leads", mock.Anything).Return(entity.ErrEmailAlreadyExists)
	mockEmail.On("SendWelcome", "beauty", "jane@shop.io", "Jane").Return()

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockEmail)

	output, err := uc.Execute(ctx, mustVertical(t, "beauty"), usecase.SubmitInput{
		Email:     "jane@shop.io",
		FirstName: "Jane",
	})

	assert.NoError(t, err)
	assert.True(t, output.Duplicate)
	mockEmail.AssertCalled(t, "SendWelcome", "beauty", "jane@shop.io", "Jane")
}

func TestCaptureLeadPersistenceFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)
	mockEmail := new(MockEmailService)

	mockRepo.On("Insert", ctx, "ecom_leads", mock.Anything).Return(errors.New(`pq: relation "ecom_leads" does not exist`))

	uc := usecase.NewCaptureLeadUseCase(mockRepo, mockEmail)

	output, err := uc.Execute(ctx, mustVertical(t, "ecom"), usecase.SubmitInput{
		Email:     "jane@shop.io",
		FirstName: "Jane",
	})

	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
	mockEmail.AssertNotCalled(t, "SendWelcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestCaptureLeadNoEmailServiceStillSucceeds(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockLeadRepository)

	mockRepo.On("Insert", ctx, "saas_leads", mock.Anything).Return(nil)

	uc := usecase.NewCaptureLeadUseCase(mockRepo, nil)

	output, err := uc.Execute(ctx, mustVertical(t, "saas"), usecase.SubmitInput{
		Email:     "cto@startup.dev",
		FirstName: "Sam",
	})

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.False(t, output.Duplicate)
}
