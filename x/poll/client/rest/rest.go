package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cometbft/cometbft/libs/log"
	"github.com/gorilla/mux"

	"github.com/axelarnetwork/polls/utils"
	"github.com/axelarnetwork/polls/x/poll/exported"
	"github.com/axelarnetwork/polls/x/poll/types"
)

//go:generate moq -out ./mock/rest.go -pkg mock . Host

// Host executes poll operations on behalf of REST callers
type Host interface {
	CreatePoll(caller string, question string, variants map[string]string) (string, error)
	Vote(caller string, pollID string, votes map[string]int32) (exported.VoteResult, error)
	ShowPoll(pollID string) (types.PollDefinition, bool)
	ShowResults(pollID string) (types.PollStats, bool)
	Polls() ([]types.PollDefinition, error)
	Ping() string
}

// HeaderCallerIdentity carries the authenticated identity of the caller
const HeaderCallerIdentity = "X-Caller-Identity"

// PathVarPollID is the name of the poll id path variable
const PathVarPollID = "poll_id"

// rest routes
const (
	RoutePing    = "/ping"
	RoutePolls   = "/polls"
	RoutePoll    = "/polls/{" + PathVarPollID + "}"
	RouteVotes   = RoutePoll + "/votes"
	RouteResults = RoutePoll + "/results"
	RouteStream  = RoutePoll + "/stream"
	RouteMetrics = "/metrics"
)

// ReqCreatePoll represents a request to create a poll
type ReqCreatePoll struct {
	Question string            `json:"question" yaml:"question"`
	Variants map[string]string `json:"variants" yaml:"variants"`
}

// ReqVote represents a request to vote in a poll
type ReqVote struct {
	Votes map[string]int32 `json:"votes" yaml:"votes"`
}

// ResCreatePoll is the response to a created poll
type ResCreatePoll struct {
	PollID string `json:"poll_id" yaml:"poll_id"`
}

// ResVote is the response to a vote
type ResVote struct {
	Counted bool   `json:"counted" yaml:"counted"`
	Reason  string `json:"reason" yaml:"reason"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ResPing is the response to a ping
type ResPing struct {
	Result string `json:"result" yaml:"result"`
}

// RegisterRoutes registers the poll REST routes with the given router
func RegisterRoutes(r *mux.Router, host Host, logger log.Logger) {
	r.HandleFunc(RoutePing, HandlerPing(host)).Methods(http.MethodGet)
	r.HandleFunc(RoutePolls, HandlerCreatePoll(host, logger)).Methods(http.MethodPost)
	r.HandleFunc(RoutePolls, HandlerQueryPolls(host, logger)).Methods(http.MethodGet)
	r.HandleFunc(RoutePoll, HandlerQueryPoll(host)).Methods(http.MethodGet)
	r.HandleFunc(RouteVotes, HandlerVote(host, logger)).Methods(http.MethodPost)
	r.HandleFunc(RouteResults, HandlerQueryResults(host)).Methods(http.MethodGet)
}

// HandlerPing returns a handler for liveness checks
func HandlerPing(host Host) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, ResPing{Result: host.Ping()})
	}
}

// HandlerCreatePoll returns a handler to create a poll
func HandlerCreatePoll(host Host, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := extractCaller(w, r)
		if !ok {
			return
		}

		var req ReqCreatePoll
		if !readJSON(w, r, &req) {
			return
		}

		pollID, err := host.CreatePoll(caller, req.Question, req.Variants)
		if err != nil {
			logger.Error("failed to create poll", "caller", caller, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusCreated, ResCreatePoll{PollID: pollID})
	}
}

// HandlerVote returns a handler to vote in a poll
func HandlerVote(host Host, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := extractCaller(w, r)
		if !ok {
			return
		}

		var req ReqVote
		if !readJSON(w, r, &req) {
			return
		}

		pollID := mux.Vars(r)[PathVarPollID]
		result, err := host.Vote(caller, pollID, req.Votes)
		if err != nil {
			logger.Error("failed to vote", "caller", caller, "poll", pollID, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		res := ResVote{Counted: result.Accepted(), Reason: result.String()}
		if err := types.VoteError(pollID, caller, result); err != nil {
			res.Error = err.Error()
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// HandlerQueryPolls returns a handler to list all polls
func HandlerQueryPolls(host Host, logger log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		polls, err := host.Polls()
		if err != nil {
			logger.Error("failed to query polls", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if polls == nil {
			polls = []types.PollDefinition{}
		}

		writeJSON(w, http.StatusOK, polls)
	}
}

// HandlerQueryPoll returns a handler to query a poll definition
func HandlerQueryPoll(host Host) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pollID := mux.Vars(r)[PathVarPollID]

		poll, ok := host.ShowPoll(pollID)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no poll known for %s", pollID))
			return
		}

		writeJSON(w, http.StatusOK, poll)
	}
}

// HandlerQueryResults returns a handler to query the results of a poll
func HandlerQueryResults(host Host) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pollID := mux.Vars(r)[PathVarPollID]

		stats, ok := host.ShowResults(pollID)
		if !ok {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no poll known for %s", pollID))
			return
		}

		writeJSON(w, http.StatusOK, stats.View())
	}
}

func extractCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	caller := r.Header.Get(HeaderCallerIdentity)
	if caller == "" {
		writeError(w, http.StatusUnauthorized, fmt.Sprintf("missing %s header", HeaderCallerIdentity))
		return "", false
	}

	if err := utils.ValidateString(caller); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s header: %s", HeaderCallerIdentity, err))
		return "", false
	}

	return caller, true
}

func readJSON(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %s", err))
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, status int, res interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
