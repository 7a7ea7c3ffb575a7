package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cleancycle/cleancycle/token"
	"github.com/cleancycle/cleancycle/util"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/cleancycle/cleancycle/db/mock"
	db "github.com/cleancycle/cleancycle/db/sqlc"
)

func randomDustbin() db.Dustbin {
	return db.Dustbin{
		ID:             util.RandomInt(1, 1000),
		Label:          util.RandomString(8),
		Area:           util.RandomString(10),
		Longitude:      util.RandomLongitude(),
		Latitude:       util.RandomLatitude(),
		CapacityLiters: 240,
		FillLevel:      int32(util.RandomInt(0, 100)),
		CreatedAt:      time.Now(),
	}
}

func TestListNearbyDustbinsAPI(t *testing.T) {
	user, _ := randomUser(t, util.UserRole)

	bin := randomDustbin()
	rows := []db.ListNearbyDustbinsRow{
		{
			ID:             bin.ID,
			Label:          bin.Label,
			Area:           bin.Area,
			Longitude:      bin.Longitude,
			Latitude:       bin.Latitude,
			CapacityLiters: bin.CapacityLiters,
			FillLevel:      bin.FillLevel,
			CreatedAt:      bin.CreatedAt,
			DistanceMeters: 312.5,
		},
	}

	testCases := []struct {
		name          string
		query         string
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			query: "?latitude=6.52&longitude=3.38",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListNearbyDustbins(gomock.Any(), gomock.Eq(db.ListNearbyDustbinsParams{
						Latitude:     6.52,
						Longitude:    3.38,
						RadiusMeters: 1000,
						RowLimit:     20,
					})).
					Times(1).
					Return(rows, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp []dustbinResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Len(t, rsp, 1)
				require.Equal(t, bin.Label, rsp[0].Label)
				require.NotNil(t, rsp[0].DistanceMeters)
				require.Equal(t, 312.5, *rsp[0].DistanceMeters)
			},
		},
		{
			name:  "CustomRadiusAndLimit",
			query: "?latitude=6.52&longitude=3.38&radius_meters=5000&limit=50",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListNearbyDustbins(gomock.Any(), gomock.Eq(db.ListNearbyDustbinsParams{
						Latitude:     6.52,
						Longitude:    3.38,
						RadiusMeters: 5000,
						RowLimit:     50,
					})).
					Times(1).
					Return([]db.ListNearbyDustbinsRow{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "MissingCoordinates",
			query: "?radius_meters=1000",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListNearbyDustbins(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:  "RadiusTooLarge",
			query: "?latitude=6.52&longitude=3.38&radius_meters=100000",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListNearbyDustbins(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:      "NoAuthorization",
			query:     "?latitude=6.52&longitude=3.38",
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListNearbyDustbins(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnauthorized, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/v1/dustbins/nearby"+tc.query, nil)
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestCreateDustbinAPI(t *testing.T) {
	admin, _ := randomUser(t, util.AdminRole)
	bin := randomDustbin()

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"label":     bin.Label,
				"area":      bin.Area,
				"longitude": bin.Longitude,
				"latitude":  bin.Latitude,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateDustbin(gomock.Any(), gomock.Eq(db.CreateDustbinParams{
						Label:          bin.Label,
						Area:           bin.Area,
						Longitude:      bin.Longitude,
						Latitude:       bin.Latitude,
						CapacityLiters: 240,
						FillLevel:      0,
					})).
					Times(1).
					Return(bin, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp dustbinResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, bin.Label, rsp.Label)
				require.Equal(t, int32(240), rsp.CapacityLiters)
				require.Nil(t, rsp.LastEmptiedAt)
			},
		},
		{
			name: "DuplicateLabel",
			body: gin.H{
				"label":     bin.Label,
				"area":      bin.Area,
				"longitude": bin.Longitude,
				"latitude":  bin.Latitude,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateDustbin(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Dustbin{}, &pgconn.PgError{Code: "23505"})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name: "MissingLabel",
			body: gin.H{
				"area":      bin.Area,
				"longitude": bin.Longitude,
				"latitude":  bin.Latitude,
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().CreateDustbin(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/admin/dustbins", bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, admin.ID, admin.Role, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestUpdateDustbinLevelAPI(t *testing.T) {
	admin, _ := randomUser(t, util.AdminRole)
	bin := randomDustbin()

	updatedBin := bin
	updatedBin.FillLevel = 90

	testCases := []struct {
		name          string
		binID         int64
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:  "OK",
			binID: bin.ID,
			body:  gin.H{"fill_level": 90},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateDustbinFillLevel(gomock.Any(), gomock.Eq(db.UpdateDustbinFillLevelParams{
						ID:        bin.ID,
						FillLevel: 90,
					})).
					Times(1).
					Return(updatedBin, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp dustbinResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, int32(90), rsp.FillLevel)
			},
		},
		{
			name:  "ZeroLevelAccepted",
			binID: bin.ID,
			body:  gin.H{"fill_level": 0},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateDustbinFillLevel(gomock.Any(), gomock.Eq(db.UpdateDustbinFillLevelParams{
						ID:        bin.ID,
						FillLevel: 0,
					})).
					Times(1).
					Return(bin, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:  "NotFound",
			binID: bin.ID,
			body:  gin.H{"fill_level": 50},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					UpdateDustbinFillLevel(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Dustbin{}, db.ErrRecordNotFound)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:  "LevelOutOfRange",
			binID: bin.ID,
			body:  gin.H{"fill_level": 120},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().UpdateDustbinFillLevel(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/admin/dustbins/%d/level", tc.binID)
			request, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
			require.NoError(t, err)

			addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, admin.ID, admin.Role, time.Minute)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
