package app

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"

	"github.com/axelarnetwork/polls/x/poll/exported"
	pollTypes "github.com/axelarnetwork/polls/x/poll/types"
)

// ExportedApp is a snapshot of the app state
type ExportedApp struct {
	Height   int64                   `json:"height"`
	AppState *pollTypes.GenesisState `json:"app_state"`
}

// ExportAppState exports the state of the application at the last committed height
func (app *PollsApp) ExportAppState() (ExportedApp, error) {
	var genState *pollTypes.GenesisState
	if err := app.query("export", func(ctx sdk.Context) {
		genState = app.PollKeeper.ExportGenesis(ctx)
	}); err != nil {
		return ExportedApp{}, err
	}

	return ExportedApp{Height: app.LastHeight(), AppState: genState}, nil
}

// ExportAppStateJSON exports the state of the application as indented JSON
func (app *PollsApp) ExportAppStateJSON() ([]byte, error) {
	state, err := app.ExportAppState()
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(state, "", "  ")
}

// ImportAppState adds all polls of the given state to the app. Nothing is imported if any poll is invalid or already exists.
func (app *PollsApp) ImportAppState(genState *pollTypes.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	return app.deliver("import", app.owner, func(ctx sdk.Context, _ exported.Env) error {
		app.PollKeeper.InitGenesis(ctx, genState)
		return nil
	})
}

// ImportAppStateJSON parses an exported state and imports it
func (app *PollsApp) ImportAppStateJSON(bz []byte) error {
	var state ExportedApp
	if err := json.Unmarshal(bz, &state); err != nil {
		return errors.Wrap(err, "failed to parse app state")
	}

	if state.AppState == nil {
		return errors.New("app state is missing")
	}

	return app.ImportAppState(state.AppState)
}
