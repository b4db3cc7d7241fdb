package mocks

import (
	"context"
	"io"

	"github.com/RAGHAVAN7777/vault-backend/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RequestOTPFunc            func(ctx context.Context, email string, role domain.Role) error
	VerifyOTPFunc             func(ctx context.Context, email, code string) error
	RequestMasterApprovalFunc func(ctx context.Context) error
	VerifyMasterApprovalFunc  func(ctx context.Context, code string) error
	RegisterFunc              func(ctx context.Context, userID, email string, role domain.Role, pin, otp, masterOTP string) (*domain.User, error)
	LoginFunc                 func(ctx context.Context, userID, pin string) (*domain.User, error)
	LoginByPatternFunc        func(pattern string) error
	RequestRecoveryOTPFunc    func(ctx context.Context, userID, email string) error
	VerifyRecoveryOTPFunc     func(ctx context.Context, userID, code string) error
	ResetPINFunc              func(ctx context.Context, userID, code, newPIN string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

func (m *MockAuthService) RequestOTP(ctx context.Context, email string, role domain.Role) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, email, role)
	}
	return nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, email, code string) error {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, email, code)
	}
	return nil
}

func (m *MockAuthService) RequestMasterApproval(ctx context.Context) error {
	if m.RequestMasterApprovalFunc != nil {
		return m.RequestMasterApprovalFunc(ctx)
	}
	return nil
}

func (m *MockAuthService) VerifyMasterApproval(ctx context.Context, code string) error {
	if m.VerifyMasterApprovalFunc != nil {
		return m.VerifyMasterApprovalFunc(ctx, code)
	}
	return nil
}

func (m *MockAuthService) Register(ctx context.Context, userID, email string, role domain.Role, pin, otp, masterOTP string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, userID, email, role, pin, otp, masterOTP)
	}
	return &domain.User{UserID: userID, Email: email, Role: role, Verified: true}, nil
}

func (m *MockAuthService) Login(ctx context.Context, userID, pin string) (*domain.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, userID, pin)
	}
	return &domain.User{UserID: userID, Role: domain.RoleStandard}, nil
}

func (m *MockAuthService) LoginByPattern(pattern string) error {
	if m.LoginByPatternFunc != nil {
		return m.LoginByPatternFunc(pattern)
	}
	return nil
}

func (m *MockAuthService) RequestRecoveryOTP(ctx context.Context, userID, email string) error {
	if m.RequestRecoveryOTPFunc != nil {
		return m.RequestRecoveryOTPFunc(ctx, userID, email)
	}
	return nil
}

func (m *MockAuthService) VerifyRecoveryOTP(ctx context.Context, userID, code string) error {
	if m.VerifyRecoveryOTPFunc != nil {
		return m.VerifyRecoveryOTPFunc(ctx, userID, code)
	}
	return nil
}

func (m *MockAuthService) ResetPIN(ctx context.Context, userID, code, newPIN string) error {
	if m.ResetPINFunc != nil {
		return m.ResetPINFunc(ctx, userID, code, newPIN)
	}
	return nil
}

// MockContentService implements domain.ContentService for testing
type MockContentService struct {
	UploadFunc func(ctx context.Context, userID, fileName, contentType string, size int64, body io.Reader) (*domain.ContentItem, error)
	DeleteFunc func(ctx context.Context, id uint) error
	ListFunc   func(ctx context.Context, userID string) ([]*domain.ContentItem, error)
	UsageFunc  func(ctx context.Context, userID string) (*domain.UsageSummary, error)
}

// NewMockContentService creates a new MockContentService with default behaviors
func NewMockContentService() *MockContentService {
	return &MockContentService{}
}

func (m *MockContentService) Upload(ctx context.Context, userID, fileName, contentType string, size int64, body io.Reader) (*domain.ContentItem, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, userID, fileName, contentType, size, body)
	}
	return &domain.ContentItem{OwnerID: userID, FileName: fileName, SizeBytes: size, BackingRef: "key"}, nil
}

func (m *MockContentService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockContentService) List(ctx context.Context, userID string) ([]*domain.ContentItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockContentService) Usage(ctx context.Context, userID string) (*domain.UsageSummary, error) {
	if m.UsageFunc != nil {
		return m.UsageFunc(ctx, userID)
	}
	return &domain.UsageSummary{UserID: userID, Role: domain.RoleStandard}, nil
}

// MockPurgeService implements domain.PurgeService for testing
type MockPurgeService struct {
	PurgeContentFunc           func(ctx context.Context, userID string) error
	RequestAccountPurgeOTPFunc func(ctx context.Context, userID string) error
	PurgeAccountFunc           func(ctx context.Context, userID, code string) error
	DeleteUserFunc             func(ctx context.Context, userID string) error
}

// NewMockPurgeService creates a new MockPurgeService with default behaviors
func NewMockPurgeService() *MockPurgeService {
	return &MockPurgeService{}
}

func (m *MockPurgeService) PurgeContent(ctx context.Context, userID string) error {
	if m.PurgeContentFunc != nil {
		return m.PurgeContentFunc(ctx, userID)
	}
	return nil
}

func (m *MockPurgeService) RequestAccountPurgeOTP(ctx context.Context, userID string) error {
	if m.RequestAccountPurgeOTPFunc != nil {
		return m.RequestAccountPurgeOTPFunc(ctx, userID)
	}
	return nil
}

func (m *MockPurgeService) PurgeAccount(ctx context.Context, userID, code string) error {
	if m.PurgeAccountFunc != nil {
		return m.PurgeAccountFunc(ctx, userID, code)
	}
	return nil
}

func (m *MockPurgeService) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, userID)
	}
	return nil
}

// MockNoteService implements domain.NoteService for testing
type MockNoteService struct {
	ListFunc   func(ctx context.Context, userID string) ([]*domain.Note, error)
	CreateFunc func(ctx context.Context, userID, title string) (*domain.Note, error)
	UpdateFunc func(ctx context.Context, id uint, content string) (*domain.Note, error)
	DeleteFunc func(ctx context.Context, id uint) error
}

// NewMockNoteService creates a new MockNoteService with default behaviors
func NewMockNoteService() *MockNoteService {
	return &MockNoteService{}
}

func (m *MockNoteService) List(ctx context.Context, userID string) ([]*domain.Note, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockNoteService) Create(ctx context.Context, userID, title string) (*domain.Note, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, title)
	}
	return &domain.Note{ID: 1, OwnerID: userID, Title: title}, nil
}

func (m *MockNoteService) Update(ctx context.Context, id uint, content string) (*domain.Note, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, content)
	}
	return &domain.Note{ID: id, Content: content}, nil
}

func (m *MockNoteService) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockAdminService implements domain.AdminService for testing
type MockAdminService struct {
	StatsFunc func(ctx context.Context) (*domain.SystemStats, error)
	UsersFunc func(ctx context.Context) ([]*domain.User, error)
}

// NewMockAdminService creates a new MockAdminService with default behaviors
func NewMockAdminService() *MockAdminService {
	return &MockAdminService{}
}

func (m *MockAdminService) Stats(ctx context.Context) (*domain.SystemStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &domain.SystemStats{}, nil
}

func (m *MockAdminService) Users(ctx context.Context) ([]*domain.User, error) {
	if m.UsersFunc != nil {
		return m.UsersFunc(ctx)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var (
	_ domain.AuthService    = (*MockAuthService)(nil)
	_ domain.ContentService = (*MockContentService)(nil)
	_ domain.PurgeService   = (*MockPurgeService)(nil)
	_ domain.NoteService    = (*MockNoteService)(nil)
	_ domain.AdminService   = (*MockAdminService)(nil)
)
