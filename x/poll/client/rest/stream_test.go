package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cometbft/cometbft/libs/log"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/polls/utils/events"
	"github.com/axelarnetwork/polls/x/poll/client/rest"
	"github.com/axelarnetwork/polls/x/poll/client/rest/mock"
	"github.com/axelarnetwork/polls/x/poll/exported"
	"github.com/axelarnetwork/polls/x/poll/types"
)

func TestHub_StreamsResults(t *testing.T) {
	poll := types.NewPollDefinition("alice", "poll", "q", map[string]string{"v1": "yes"})
	host := &mock.HostMock{}
	host.ShowResultsFunc = func(pollID string) (types.PollStats, bool) {
		results := types.NewPollResults(pollID)
		if len(host.ShowResultsCalls()) > 1 {
			results.Variants["v1"] = 1
			results.Voted["bob"] = struct{}{}
		}

		return types.PollStats{Poll: poll, Results: results}, pollID == poll.PollID
	}
	hub := rest.NewHub(host, log.NewNopLogger())
	server := httptest.NewServer(newRouterWithHub(host, hub))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/polls/" + poll.PollID + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()

	var initial types.PollStatsView
	assert.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	assert.NoError(t, conn.ReadJSON(&initial))
	assert.Empty(t, initial.Results.Variants)

	rejected := events.ToSDKEvent(types.Voted{PollID: poll.PollID, Voter: "bob", Result: exported.VoteRejectedAlreadyVoted.String()})
	accepted := events.ToSDKEvent(types.Voted{PollID: poll.PollID, Voter: "bob", Result: exported.VoteAccepted.String()})

	// the initial results are only written once the subscriber is registered
	hub.Publish(sdk.Events{rejected, accepted})

	var update types.PollStatsView
	assert.NoError(t, conn.ReadJSON(&update))

	assert.Equal(t, map[string]uint64{"v1": 1}, update.Results.Variants)
	assert.Equal(t, []string{"bob"}, update.Results.Voted)
}

func TestHub_UnknownPoll(t *testing.T) {
	host := &mock.HostMock{
		ShowResultsFunc: func(string) (types.PollStats, bool) { return types.PollStats{}, false },
	}
	server := httptest.NewServer(newRouterWithHub(host, rest.NewHub(host, log.NewNopLogger())))
	defer server.Close()

	_, res, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/polls/unknown/stream", nil)
	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestHub_PublishWithoutSubscribers(t *testing.T) {
	host := &mock.HostMock{}
	hub := rest.NewHub(host, log.NewNopLogger())

	hub.Publish(sdk.Events{events.ToSDKEvent(types.Voted{PollID: "poll", Voter: "bob", Result: exported.VoteAccepted.String()})})

	assert.Len(t, host.ShowResultsCalls(), 0)
}
