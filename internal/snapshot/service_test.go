package snapshot_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/payday/internal/dates"
	"github.com/MrJamesThe3rd/payday/internal/snapshot"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedNow() time.Time {
	return time.Date(2025, time.January, 28, 12, 0, 0, 0, time.UTC)
}

func sampleDocument() *snapshot.Document {
	accountID := uuid.New()
	templateID := uuid.New()
	last := dates.MustParse("2025-01-03")

	return &snapshot.Document{
		Version:          snapshot.Version,
		PaycheckSettings: snapshot.PaycheckSettings{LastPaycheckDate: &last},
		Accounts: []snapshot.Account{
			{ID: accountID, Name: "Main Checking", Type: "checking", CurrentBalance: money("2500"), IsDefault: true},
		},
		Categories: []snapshot.Category{
			{ID: uuid.New(), Name: "Utilities", Color: "#0891b2", Icon: "zap", IsDefault: true},
		},
		RecurringTemplates: []snapshot.RecurringTemplate{
			{
				ID: templateID, Name: "Internet", BaseAmount: money("60"), Frequency: "monthly",
				IntervalValue: 1, StartDate: dates.MustParse("2025-01-15"),
				NextDueDate: dates.MustParse("2025-02-15"), Category: "Utilities",
				AccountID: &accountID, IsActive: true,
			},
		},
		FixedExpenses: []snapshot.FixedExpense{
			{
				ID: uuid.New(), Name: "Internet", Amount: money("60"), PaidAmount: decimal.Zero,
				DueDate: dates.MustParse("2025-01-15"), Category: "Utilities",
				AccountID: &accountID, RecurringTemplateID: &templateID,
			},
		},
		PendingTransactions: []snapshot.PendingTransaction{
			{
				ID: uuid.New(), AccountID: accountID, Amount: money("-42.50"),
				Description: "Grocery run", Category: "Food", Date: dates.MustParse("2025-01-20"),
			},
		},
		AuditLog: []snapshot.AuditEntry{
			{
				ID: uuid.New(), ActionType: "RESET", EntityType: "fixed_expense", EntityID: "all",
				Description: "Reset Fixed Expenses for February 2025",
			},
		},
	}
}

func TestService_ExportImportRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := sampleDocument()

	repo := snapshot.NewMockRepository(ctrl)
	repo.EXPECT().ReadAll(gomock.Any()).Return(doc, nil)

	svc := snapshot.NewService(repo, fixedNow)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))

	assert.Contains(t, buf.String(), `"version": 1`)

	repo.EXPECT().
		Replace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, restored *snapshot.Document) error {
			require.Len(t, restored.Accounts, 1)
			require.Len(t, restored.FixedExpenses, 1)
			assert.Equal(t, doc.Accounts[0].ID, restored.Accounts[0].ID)
			assert.True(t, restored.FixedExpenses[0].Amount.Equal(money("60")))
			assert.Equal(t, doc.RecurringTemplates[0].ID, *restored.FixedExpenses[0].RecurringTemplateID)
			require.Len(t, restored.AuditLog, 1)
			assert.Equal(t, "RESET", restored.AuditLog[0].ActionType)
			return nil
		})

	require.NoError(t, svc.Import(context.Background(), &buf))
}

func TestService_Export_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	doc := sampleDocument()

	repo := snapshot.NewMockRepository(ctrl)
	repo.EXPECT().ReadAll(gomock.Any()).Return(doc, nil).Times(2)

	svc := snapshot.NewService(repo, fixedNow)

	var first, second bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &first))
	require.NoError(t, svc.Export(context.Background(), &second))

	assert.Equal(t, first.String(), second.String())
	assert.Contains(t, first.String(), `"exported_at": "2025-01-28T12:00:00Z"`)
}

func TestService_Import_RejectsUnknownVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := snapshot.NewService(snapshot.NewMockRepository(ctrl), fixedNow)

	err := svc.Import(context.Background(), strings.NewReader(`{"version": 99}`))
	assert.ErrorIs(t, err, snapshot.ErrUnsupportedVersion)
}

func TestService_Import_RejectsDanglingReferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := snapshot.NewService(snapshot.NewMockRepository(ctrl), fixedNow)

	orphan := uuid.New()
	input := `{
		"version": 1,
		"fixed_expenses": [
			{"id": "` + uuid.NewString() + `", "name": "Rent", "amount": "1200", "paid_amount": "0",
			 "due_date": "2025-01-01", "category": "Housing", "account_id": "` + orphan.String() + `"}
		]
	}`

	err := svc.Import(context.Background(), strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account")
}

func TestService_Import_AcceptsBOMPrefixedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := snapshot.NewMockRepository(ctrl)
	repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(nil)

	svc := snapshot.NewService(repo, fixedNow)

	payload := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"version": 1}`)...)
	require.NoError(t, svc.Import(context.Background(), bytes.NewReader(payload)))
}
