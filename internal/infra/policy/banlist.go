package policy

import (
	"strings"

	"auction-hall/internal/domain/item"
)

// BanList rejects item kinds named in configuration, case-insensitively.
type BanList struct {
	banned map[string]struct{}
}

func NewBanList(kinds []string) *BanList {
	banned := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			banned[k] = struct{}{}
		}
	}
	return &BanList{banned: banned}
}

func (b *BanList) IsBanned(payload item.Payload) bool {
	_, ok := b.banned[strings.ToLower(payload.Kind())]
	return ok
}
