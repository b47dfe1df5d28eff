package policy_test

import (
	"testing"

	"auction-hall/internal/domain/item"
	"auction-hall/internal/infra/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload(t *testing.T, kind string) item.Payload {
	t.Helper()
	p, err := item.NewPayload(kind, nil)
	require.NoError(t, err)
	return p
}

func TestBanList(t *testing.T) {
	bans := policy.NewBanList([]string{"Cursed_Idol", " haunted_mirror ", ""})

	assert.True(t, bans.IsBanned(payload(t, "cursed_idol")))
	assert.True(t, bans.IsBanned(payload(t, "CURSED_IDOL")))
	assert.True(t, bans.IsBanned(payload(t, "haunted_mirror")))
	assert.False(t, bans.IsBanned(payload(t, "vintage_lamp")))
}

func TestBanListEmpty(t *testing.T) {
	bans := policy.NewBanList(nil)
	assert.False(t, bans.IsBanned(payload(t, "anything")))
}
