package token2022

import "github.com/Jars1987/token-2022-parser/internal/domain"

// extensionNames maps known Token-2022 extension type codes to their names.
// Append-only: new on-chain extension types get a row here, and anything
// not listed is still surfaced as Unrecognized(code) by Classify.
var extensionNames = map[uint16]string{
	1:  "TransferFeeConfig",
	2:  "TransferFeeAmount",
	3:  "MintCloseAuthority",
	4:  "ConfidentialTransferMint",
	5:  "ConfidentialTransferAccount",
	6:  "DefaultAccountState",
	7:  "ImmutableOwner",
	8:  "MemoTransfer",
	9:  "NonTransferable",
	10: "InterestBearingConfig",
	11: "CpiGuard",
	12: "PermanentDelegate",
	13: "NonTransferableAccount",
	14: "TransferHook",
	15: "TransferHookAccount",
	16: "ConfidentialTransferFeeConfig",
	17: "ConfidentialTransferFeeAmount",
	18: "MetadataPointer",
	19: "TokenMetadata",
	20: "GroupPointer",
	21: "TokenGroup",
	22: "GroupMemberPointer",
	23: "TokenGroupMember",
	24: "ConfidentialMintBurn",
	25: "ScaledUiAmount",
	26: "Pausable",
	27: "PausableAccount",
}

// Classify maps a TLV type code to its extension kind. Total: codes absent
// from the catalog come back with an empty name and render as
// Unrecognized(code).
func Classify(code uint16) domain.ExtensionKind {
	return domain.ExtensionKind{Code: code, Name: extensionNames[code]}
}
