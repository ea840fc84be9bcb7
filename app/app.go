package app

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	dbm "github.com/cometbft/cometbft-db"
	"github.com/cometbft/cometbft/libs/log"
	tmproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/cosmos/cosmos-sdk/store"
	pruningtypes "github.com/cosmos/cosmos-sdk/store/pruning/types"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/polls/utils"
	errors2 "github.com/axelarnetwork/polls/utils/errors"
	"github.com/axelarnetwork/polls/x/poll/exported"
	pollKeeper "github.com/axelarnetwork/polls/x/poll/keeper"
	pollTypes "github.com/axelarnetwork/polls/x/poll/types"
	"github.com/axelarnetwork/utils/funcs"
)

// Name is the name of the application
const Name = "polls"

var (
	// DefaultNodeHome default home directories for the application daemon
	DefaultNodeHome string
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)
}

// EventListener is notified with the events of every committed operation
type EventListener func(events sdk.Events)

// PollsApp hosts the poll store. It loads the latest committed state on start
// and commits a new version after every state changing operation.
// Operations are serialized, each one is applied atomically or not at all.
type PollsApp struct {
	mu sync.Mutex

	db     dbm.DB
	cms    storetypes.CommitMultiStore
	keys   map[string]*storetypes.KVStoreKey
	logger log.Logger

	owner   string
	entropy io.Reader
	pruning pruningtypes.PruningOptions

	listenersMu sync.RWMutex
	listeners   []EventListener

	PollKeeper pollKeeper.Keeper
}

// Option configures a PollsApp
type Option func(app *PollsApp)

// WithEntropy sets the source of the random seeds handed to operations
func WithEntropy(entropy io.Reader) Option {
	return func(app *PollsApp) {
		app.entropy = entropy
	}
}

// WithPruning sets the policy for dropping old versions of the poll store
func WithPruning(opts pruningtypes.PruningOptions) Option {
	return func(app *PollsApp) {
		app.pruning = opts
	}
}

// NewPollsApp returns a new app that persists its state in the given database.
// Unless configured otherwise, only the most recent versions of the state are kept.
func NewPollsApp(db dbm.DB, owner string, logger log.Logger, opts ...Option) (*PollsApp, error) {
	keys := CreateStoreKeys()

	app := &PollsApp{
		db:         db,
		cms:        store.NewCommitMultiStore(db),
		keys:       keys,
		logger:     logger,
		owner:      owner,
		entropy:    rand.Reader,
		pruning:    pruningtypes.NewPruningOptions(pruningtypes.PruningEverything),
		PollKeeper: pollKeeper.NewKeeper(MakeEncodingConfig(), keys[pollTypes.StoreKey]),
	}

	for _, opt := range opts {
		opt(app)
	}

	if err := app.pruning.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid pruning options")
	}

	for _, key := range keys {
		app.cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	app.cms.SetPruning(app.pruning)

	if err := app.cms.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "failed to load latest version of the poll store")
	}

	logger.Info(fmt.Sprintf("loaded poll store at height %d", app.LastHeight()), "owner", owner)

	return app, nil
}

// CreateStoreKeys returns the keys of all stores mounted by the app
func CreateStoreKeys() map[string]*storetypes.KVStoreKey {
	return sdk.NewKVStoreKeys(pollTypes.StoreKey)
}

// LastHeight returns the version of the last commit
func (app *PollsApp) LastHeight() int64 {
	return app.cms.LastCommitID().Version
}

// Subscribe registers a listener for the events of every committed operation
func (app *PollsApp) Subscribe(listener EventListener) {
	app.listenersMu.Lock()
	defer app.listenersMu.Unlock()

	app.listeners = append(app.listeners, listener)
}

// Close closes the underlying database
func (app *PollsApp) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()

	return app.db.Close()
}

// CreatePoll creates a poll on behalf of the given caller and returns its id
func (app *PollsApp) CreatePoll(caller string, question string, variants map[string]string) (string, error) {
	var pollID string
	err := app.deliver("create_poll", caller, func(ctx sdk.Context, env exported.Env) error {
		pollID = app.PollKeeper.CreatePoll(ctx, env, question, variants)
		return nil
	})

	return pollID, err
}

// Vote casts the caller's ballot in the given poll. Rejected votes are committed as no-ops and are not an error.
func (app *PollsApp) Vote(caller string, pollID string, votes map[string]int32) (exported.VoteResult, error) {
	var result exported.VoteResult
	err := app.deliver("vote", caller, func(ctx sdk.Context, env exported.Env) error {
		result = app.PollKeeper.CastVote(ctx, env, pollID, votes)
		return nil
	})

	return result, err
}

// ShowPoll returns the definition of the given poll
func (app *PollsApp) ShowPoll(pollID string) (poll pollTypes.PollDefinition, ok bool) {
	err := app.query("show_poll", func(ctx sdk.Context) {
		poll, ok = app.PollKeeper.ShowPoll(ctx, pollID)
	})

	return poll, ok && err == nil
}

// ShowResults returns the given poll with its current results
func (app *PollsApp) ShowResults(pollID string) (stats pollTypes.PollStats, ok bool) {
	err := app.query("show_results", func(ctx sdk.Context) {
		stats, ok = app.PollKeeper.ShowResults(ctx, pollID)
	})

	return stats, ok && err == nil
}

// Polls returns all poll definitions
func (app *PollsApp) Polls() ([]pollTypes.PollDefinition, error) {
	var polls []pollTypes.PollDefinition
	err := app.query("polls", func(ctx sdk.Context) {
		polls = app.PollKeeper.GetPolls(ctx)
	})

	return polls, err
}

// Ping is a liveness check
func (app *PollsApp) Ping() string {
	return app.PollKeeper.Ping()
}

// deliver runs the given operation on a branch of the latest state. The branch is committed only if the operation succeeds.
func (app *PollsApp) deliver(operation string, caller string, op func(ctx sdk.Context, env exported.Env) error) error {
	defer telemetry.MeasureSince(time.Now(), Name, "deliver", operation)

	app.mu.Lock()
	events, err := app.deliverLocked(operation, caller, op)
	app.mu.Unlock()

	if err != nil {
		app.logger.Error(err.Error(), errors2.KeyVals(err)...)
		return err
	}

	app.notify(events)
	return nil
}

func (app *PollsApp) deliverLocked(operation string, caller string, op func(ctx sdk.Context, env exported.Env) error) (sdk.Events, error) {
	ctx := app.newContext(app.cms)
	env := &callEnv{caller: caller, owner: app.owner, entropy: app.entropy}

	if _, err := utils.RunCached(ctx, app, func(cachedCtx sdk.Context) (struct{}, error) {
		return struct{}{}, op(cachedCtx, env)
	}); err != nil {
		return nil, errors2.With(errors.Wrapf(err, "operation %s aborted", operation), "operation", operation, "caller", caller)
	}

	commitID := app.cms.Commit()
	app.logger.Debug("committed operation", "operation", operation, "height", commitID.Version)

	return ctx.EventManager().Events(), nil
}

// Logger returns the logger of the app
func (app *PollsApp) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "app")
}

// query runs the given function on a branch of the latest state that is never committed
func (app *PollsApp) query(operation string, q func(ctx sdk.Context)) (err error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = errors2.With(fmt.Errorf("query aborted: %v", r), "operation", operation)
			app.logger.Error(err.Error(), errors2.KeyVals(err)...)
		}
	}()

	q(app.newContext(app.cms.CacheMultiStore()))
	return nil
}

func (app *PollsApp) newContext(ms storetypes.MultiStore) sdk.Context {
	header := tmproto.Header{
		ChainID: Name,
		Height:  app.LastHeight() + 1,
		Time:    time.Now().UTC(),
	}

	return sdk.NewContext(ms, header, false, app.logger)
}

func (app *PollsApp) notify(events sdk.Events) {
	app.listenersMu.RLock()
	defer app.listenersMu.RUnlock()

	for _, listener := range app.listeners {
		listener(events)
	}
}

// OpenDB opens the database of the app in the data directory below the given home directory
func OpenDB(home string, backend dbm.BackendType) (dbm.DB, error) {
	dataDir := filepath.Join(home, "data")
	db, err := dbm.NewDB(Name, backend, dataDir)
	if err != nil {
		return nil, errors2.With(errors.Wrap(err, "failed to open database"), "dir", dataDir, "backend", backend)
	}

	return db, nil
}

// MustOpenDB is like OpenDB but panics on failure
func MustOpenDB(home string, backend dbm.BackendType) dbm.DB {
	return funcs.Must(OpenDB(home, backend))
}
