package payload

import "usdcdash/internal/core"

// TransferRequest is validated by the transfer workflow so that field errors are reported
// the same way for every caller.
type TransferRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (t TransferRequest) ToCore() core.TransferRequest {
	return core.TransferRequest{
		Recipient: t.Recipient,
		Amount:    t.Amount,
	}
}
