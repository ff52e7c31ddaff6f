package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       CreatePaymentRequest
		wantField string
	}{
		{
			name: "valid",
			req:  CreatePaymentRequest{RecordNumber: 1, AmountPaid: 5000, PaymentDate: "2024-01-10"},
		},
		{
			name: "zero amount is valid",
			req:  CreatePaymentRequest{RecordNumber: 1, AmountPaid: 0, PaymentDate: "2024-01-10"},
		},
		{
			name:      "negative amount",
			req:       CreatePaymentRequest{RecordNumber: 1, AmountPaid: -1, PaymentDate: "2024-01-10"},
			wantField: "amountPaid",
		},
		{
			name:      "missing record number",
			req:       CreatePaymentRequest{AmountPaid: 5000, PaymentDate: "2024-01-10"},
			wantField: "recordNumber",
		},
		{
			name:      "bad date",
			req:       CreatePaymentRequest{RecordNumber: 1, AmountPaid: 5000, PaymentDate: "10.01.2024"},
			wantField: "paymentDate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			if tt.wantField == "" {
				assert.True(t, errs.OK())
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}
