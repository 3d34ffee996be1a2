package session

import (
	"context"
	"errors"
	"testing"

	"case_desk_app_go/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromConfig(t *testing.T) {
	provider := FromConfig(&config.Config{
		SessionUserID:    "u-1",
		SessionUserName:  "John Smith",
		SessionUserEmail: "john.smith@lawfirm.com",
		SessionUserRole:  "attorney",
	})

	identity, err := provider.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-1", identity.ID)
	assert.Equal(t, "John Smith", identity.Name)
	assert.Equal(t, "JS", identity.Initials())
}

func TestStaticProvider_Empty(t *testing.T) {
	_, err := NewStaticProvider(Identity{}).Current(context.Background())
	assert.True(t, errors.Is(err, ErrNoIdentity))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "MG", Identity{Name: "maria garcia lopez"}.Initials())
	assert.Equal(t, "P", Identity{Name: "Prince"}.Initials())
	assert.Equal(t, "", Identity{}.Initials())
}
