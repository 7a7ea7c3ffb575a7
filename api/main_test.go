package api

import (
	"os"
	"testing"
	"time"

	"github.com/cleancycle/cleancycle/util"
	"github.com/cleancycle/cleancycle/worker"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	db "github.com/cleancycle/cleancycle/db/sqlc"
)

func newTestServer(t *testing.T, store db.Store) *Server {
	return newTestServerWithDistributor(t, store, nil)
}

func newTestServerWithDistributor(t *testing.T, store db.Store, taskDistributor worker.TaskDistributor) *Server {
	config := util.Config{
		TokenSymmetricKey:    util.RandomString(32),
		AccessTokenDuration:  time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	}

	server, err := NewServer(config, store, taskDistributor)
	require.NoError(t, err)

	return server
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
