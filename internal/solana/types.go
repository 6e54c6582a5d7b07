package solana

import (
	"encoding/base64"
	"fmt"
)

// MaxMultipleAccounts is the key limit the RPC node enforces on a single
// getMultipleAccounts call.
const MaxMultipleAccounts = 100

// AccountInfo represents Solana account information.
type AccountInfo struct {
	Lamports   uint64
	Owner      string
	Data       string // base64 encoded
	Executable bool
	RentEpoch  uint64
}

// DecodeData decodes the base64 account data payload.
func (a *AccountInfo) DecodeData() ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return nil, fmt.Errorf("decode account data: %w", err)
	}
	return raw, nil
}
