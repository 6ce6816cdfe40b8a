package domain

import (
	"strings"
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

// Table is a mongo collection name
type Table string

const (
	TableLedgerAccounts   Table = "ledger_accounts"
	TableAssets           Table = "assets"
	TableRoyaltySchedules Table = "royalty_schedules"
	TableMintEvents       Table = "mint_events"
)

// Address identifies a wallet on the settlement ledger
type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// AssetId identifies a minted collectible
type AssetId string

func (id AssetId) String() string {
	return string(id)
}

func (id AssetId) IsEmpty() bool {
	return len(id) == 0
}
