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
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/cleancycle/cleancycle/db/mock"
	db "github.com/cleancycle/cleancycle/db/sqlc"
	mockwk "github.com/cleancycle/cleancycle/worker/mock"
)

func randomWorkerTask(worker db.User, pickup db.Pickup) db.WorkerTask {
	return db.WorkerTask{
		ID:         util.RandomInt(1, 1000),
		PickupID:   pickup.ID,
		WorkerID:   worker.ID,
		WorkerName: worker.FullName,
		Status:     db.TaskStatusAssigned,
		Address:    pickup.Address,
		Longitude:  pickup.Longitude,
		Latitude:   pickup.Latitude,
	}
}

func TestAdvanceTaskAPI(t *testing.T) {
	user, _ := randomUser(t, util.UserRole)
	workerUser, _ := randomUser(t, util.WorkerRole)
	pickup := randomPickup(user)
	task := randomWorkerTask(workerUser, pickup)

	startedTask := task
	startedTask.Status = db.TaskStatusInProgress
	startedTask.StartedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	startedPickup := pickup
	startedPickup.Status = db.PickupStatusInProgress
	startedPickup.WorkerID = pgtype.Int8{Int64: workerUser.ID, Valid: true}
	startedPickup.WorkerName = workerUser.FullName

	testCases := []struct {
		name          string
		taskID        int64
		body          gin.H
		setupAuth     func(t *testing.T, request *http.Request, tokenMaker token.Maker)
		buildStubs    func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:   "OK",
			taskID: task.ID,
			body:   gin.H{"status": db.TaskStatusInProgress},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, workerUser.ID, workerUser.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					AdvanceTaskTx(gomock.Any(), gomock.Eq(db.AdvanceTaskTxParams{
						TaskID:   task.ID,
						WorkerID: workerUser.ID,
						Status:   db.TaskStatusInProgress,
					})).
					Times(1).
					Return(db.AdvanceTaskTxResult{Task: startedTask, Pickup: startedPickup}, nil)
				distributor.EXPECT().
					DistributeTaskSendNotification(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp advanceTaskResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, db.TaskStatusInProgress, rsp.Task.Status)
				require.Equal(t, db.PickupStatusInProgress, rsp.Pickup.Status)
				require.NotNil(t, rsp.Task.StartedAt)
			},
		},
		{
			name:   "CompletedWithNotes",
			taskID: task.ID,
			body: gin.H{
				"status":           db.TaskStatusCompleted,
				"completion_notes": "bins emptied",
			},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, workerUser.ID, workerUser.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				completedTask := startedTask
				completedTask.Status = db.TaskStatusCompleted
				completedTask.EndedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}
				completedTask.CompletionNotes = pgtype.Text{String: "bins emptied", Valid: true}

				completedPickup := startedPickup
				completedPickup.Status = db.PickupStatusCompleted

				store.EXPECT().
					AdvanceTaskTx(gomock.Any(), gomock.Eq(db.AdvanceTaskTxParams{
						TaskID:          task.ID,
						WorkerID:        workerUser.ID,
						Status:          db.TaskStatusCompleted,
						CompletionNotes: "bins emptied",
					})).
					Times(1).
					Return(db.AdvanceTaskTxResult{Task: completedTask, Pickup: completedPickup}, nil)
				distributor.EXPECT().
					DistributeTaskSendNotification(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp advanceTaskResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, db.TaskStatusCompleted, rsp.Task.Status)
				require.Equal(t, "bins emptied", rsp.Task.CompletionNotes)
				require.NotNil(t, rsp.Task.EndedAt)
			},
		},
		{
			name:   "Forbidden",
			taskID: task.ID,
			body:   gin.H{"status": db.TaskStatusInProgress},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, workerUser.ID, workerUser.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					AdvanceTaskTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.AdvanceTaskTxResult{}, db.ErrTaskForbidden)
				distributor.EXPECT().
					DistributeTaskSendNotification(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name:   "InvalidTransition",
			taskID: task.ID,
			body:   gin.H{"status": db.TaskStatusCompleted},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, workerUser.ID, workerUser.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					AdvanceTaskTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.AdvanceTaskTxResult{}, db.ErrInvalidTransition)
				distributor.EXPECT().
					DistributeTaskSendNotification(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:   "NotFound",
			taskID: task.ID,
			body:   gin.H{"status": db.TaskStatusInProgress},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, workerUser.ID, workerUser.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().
					AdvanceTaskTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.AdvanceTaskTxResult{}, db.ErrRecordNotFound)
				distributor.EXPECT().
					DistributeTaskSendNotification(gomock.Any(), gomock.Any()).
					Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:   "InvalidStatus",
			taskID: task.ID,
			body:   gin.H{"status": "cancelled"},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, workerUser.ID, workerUser.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().AdvanceTaskTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:   "ResidentRoleRejected",
			taskID: task.ID,
			body:   gin.H{"status": db.TaskStatusInProgress},
			setupAuth: func(t *testing.T, request *http.Request, tokenMaker token.Maker) {
				addAuthorization(t, request, tokenMaker, authorizationTypeBearer, user.ID, user.Role, time.Minute)
			},
			buildStubs: func(store *mockdb.MockStore, distributor *mockwk.MockTaskDistributor) {
				store.EXPECT().AdvanceTaskTx(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			distributor := mockwk.NewMockTaskDistributor(ctrl)
			tc.buildStubs(store, distributor)

			server := newTestServerWithDistributor(t, store, distributor)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/v1/worker/tasks/%d/status", tc.taskID)
			request, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
			require.NoError(t, err)

			tc.setupAuth(t, request, server.tokenMaker)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestListWorkerTasksAPI(t *testing.T) {
	workerUser, _ := randomUser(t, util.WorkerRole)

	rows := []db.ListWorkerTasksRow{
		{
			ID:                  util.RandomInt(1, 1000),
			PickupID:            util.RandomInt(1, 1000),
			WorkerID:            workerUser.ID,
			WorkerName:          workerUser.FullName,
			Status:              db.TaskStatusAssigned,
			Address:             util.RandomString(20),
			PickupUserName:      util.RandomName(),
			PickupWasteType:     util.RandomWasteType(),
			PickupQuantity:      "1 bag",
			PickupPreferredDate: time.Now().Add(24 * time.Hour),
		},
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		ListWorkerTasks(gomock.Any(), gomock.Eq(db.ListWorkerTasksParams{
			WorkerID:  workerUser.ID,
			Status:    db.TaskStatusAssigned,
			RowLimit:  10,
			RowOffset: 0,
		})).
		Times(1).
		Return(rows, nil)

	server := newTestServer(t, store)
	recorder := httptest.NewRecorder()

	url := "/v1/worker/tasks?page_id=1&page_size=10&status=assigned"
	request, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)

	addAuthorization(t, request, server.tokenMaker, authorizationTypeBearer, workerUser.ID, workerUser.Role, time.Minute)
	server.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var rsp []workerTaskResponse
	err = json.Unmarshal(recorder.Body.Bytes(), &rsp)
	require.NoError(t, err)
	require.Len(t, rsp, 1)
	require.Equal(t, workerUser.FullName, rsp[0].WorkerName)
	require.Equal(t, rows[0].PickupUserName, rsp[0].PickupUserName)
	require.Equal(t, rows[0].PickupWasteType, rsp[0].PickupWasteType)
	require.Nil(t, rsp[0].StartedAt)
}
