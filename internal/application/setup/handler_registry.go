package setup

import (
	"reflect"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/metrics"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	leagueCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/league/commands"
	leagueQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/league/queries"
	managerCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/manager/commands"
	managerQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/manager/queries"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	appPlayer "github.com/andrescamacho/fantasy-manager-go/internal/application/player"
	playerCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/player/commands"
	playerQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/player/queries"
	teamCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/team/commands"
	teamQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/team/queries"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/throttle"
	appTransfer "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer"
	transferCommands "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer/commands"
	transferQueries "github.com/andrescamacho/fantasy-manager-go/internal/application/transfer/queries"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/league"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/player"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/team"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/transfer"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	managerRepo  manager.ManagerRepository
	playerRepo   player.PlayerRepository
	transferRepo transfer.TransferRepository
	leagueRepo   league.LeagueRepository
	teamRepo     team.TeamRepository

	queue     *appTransfer.Queue
	directory *appPlayer.Directory

	// Optional pipeline concerns; nil disables them
	limiter        *throttle.ManagerLimiter
	commandMetrics *metrics.CommandMetricsCollector
}

// NewHandlerRegistry creates a new handler registry with required dependencies.
// transfersCount bounds every manager's queue; 0 means the default of 3.
func NewHandlerRegistry(
	managerRepo manager.ManagerRepository,
	playerRepo player.PlayerRepository,
	transferRepo transfer.TransferRepository,
	leagueRepo league.LeagueRepository,
	teamRepo team.TeamRepository,
	transfersCount int,
) *HandlerRegistry {
	return &HandlerRegistry{
		managerRepo:  managerRepo,
		playerRepo:   playerRepo,
		transferRepo: transferRepo,
		leagueRepo:   leagueRepo,
		teamRepo:     teamRepo,
		queue:        appTransfer.NewQueue(transferRepo, transfersCount),
		directory:    appPlayer.NewDirectory(playerRepo),
	}
}

// WithThrottle enables per-manager rate limiting of manager-scoped requests
func (r *HandlerRegistry) WithThrottle(limiter *throttle.ManagerLimiter) *HandlerRegistry {
	r.limiter = limiter
	return r
}

// WithCommandMetrics records duration and outcome of every request
func (r *HandlerRegistry) WithCommandMetrics(collector *metrics.CommandMetricsCollector) *HandlerRegistry {
	r.commandMetrics = collector
	return r
}

// Queue exposes the transfer queue shared by all transfer handlers
func (r *HandlerRegistry) Queue() *appTransfer.Queue {
	return r.queue
}

// RegisterManagerHandlers registers manager registration and lookup handlers
func (r *HandlerRegistry) RegisterManagerHandlers(m mediator.Mediator) error {
	if err := m.Register(
		reflect.TypeOf(&managerCommands.RegisterManagerCommand{}),
		managerCommands.NewRegisterManagerHandler(r.managerRepo),
	); err != nil {
		return err
	}

	if err := mediator.RegisterHandler[*managerQueries.GetManagerQuery](m, managerQueries.NewGetManagerHandler(r.managerRepo)); err != nil {
		return err
	}

	return mediator.RegisterHandler[*managerQueries.ListManagersQuery](m, managerQueries.NewListManagersHandler(r.managerRepo))
}

// RegisterPlayerHandlers registers player directory handlers
func (r *HandlerRegistry) RegisterPlayerHandlers(m mediator.Mediator) error {
	if err := mediator.RegisterHandler[*playerCommands.AddPlayerCommand](m, playerCommands.NewAddPlayerHandler(r.playerRepo)); err != nil {
		return err
	}

	return mediator.RegisterHandler[*playerQueries.ListTeamPlayersQuery](m, playerQueries.NewListTeamPlayersHandler(r.playerRepo))
}

// RegisterLeagueHandlers registers league creation and membership handlers
func (r *HandlerRegistry) RegisterLeagueHandlers(m mediator.Mediator) error {
	if err := mediator.RegisterHandler[*leagueCommands.CreateLeagueCommand](m, leagueCommands.NewCreateLeagueHandler(r.leagueRepo)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*leagueCommands.JoinLeagueCommand](m, leagueCommands.NewJoinLeagueHandler(r.leagueRepo)); err != nil {
		return err
	}
	if err := mediator.RegisterHandler[*leagueCommands.LeaveLeagueCommand](m, leagueCommands.NewLeaveLeagueHandler(r.leagueRepo)); err != nil {
		return err
	}

	return mediator.RegisterHandler[*leagueQueries.GetLeagueQuery](m, leagueQueries.NewGetLeagueHandler(r.leagueRepo))
}

// RegisterTeamHandlers registers team creation and roster lookup handlers
func (r *HandlerRegistry) RegisterTeamHandlers(m mediator.Mediator) error {
	if err := mediator.RegisterHandler[*teamCommands.CreateTeamCommand](m, teamCommands.NewCreateTeamHandler(r.teamRepo)); err != nil {
		return err
	}

	return mediator.RegisterHandler[*teamQueries.GetTeamQuery](m, teamQueries.NewGetTeamHandler(r.teamRepo, r.playerRepo))
}

// RegisterTransferHandlers registers the transfer queue commands and queries
//
// This method registers:
//   - CreateTransferCommand → CreateTransferHandler
//   - AbortTransferCommand → AbortTransferHandler
//   - ListTransfersQuery → ListTransfersHandler
//   - CountTransfersQuery → CountTransfersHandler
func (r *HandlerRegistry) RegisterTransferHandlers(m mediator.Mediator) error {
	if err := mediator.RegisterHandler[*transferCommands.CreateTransferCommand](m, transferCommands.NewCreateTransferHandler(r.queue, r.directory)); err != nil {
		return err
	}

	if err := mediator.RegisterHandler[*transferCommands.AbortTransferCommand](m, transferCommands.NewAbortTransferHandler(r.queue)); err != nil {
		return err
	}

	if err := mediator.RegisterHandler[*transferQueries.ListTransfersQuery](m, transferQueries.NewListTransfersHandler(r.queue, r.directory)); err != nil {
		return err
	}

	return mediator.RegisterHandler[*transferQueries.CountTransfersQuery](m, transferQueries.NewCountTransfersHandler(r.queue))
}

// CreateConfiguredMediator creates a mediator with every handler registered.
//
// Middlewares run outermost first: command metrics, throttling, then manager
// resolution, so throttled requests never reach the database.
func (r *HandlerRegistry) CreateConfiguredMediator() (mediator.Mediator, error) {
	m := mediator.NewMediator()

	if r.commandMetrics != nil {
		m.RegisterMiddleware(metrics.PrometheusMiddleware(r.commandMetrics))
	}
	if r.limiter != nil {
		m.RegisterMiddleware(throttle.Middleware(r.limiter))
	}
	m.RegisterMiddleware(common.ManagerMiddleware(r.managerRepo))

	if err := r.RegisterManagerHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterPlayerHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterLeagueHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterTeamHandlers(m); err != nil {
		return nil, err
	}
	if err := r.RegisterTransferHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
