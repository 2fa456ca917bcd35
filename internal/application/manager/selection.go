package manager

import (
	"context"
	"fmt"

	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/domain/manager"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/config"
)

// SelectionOptions holds inputs for manager selection
type SelectionOptions struct {
	ManagerIDFlag  *int   // --manager-id flag (highest priority)
	ExternalIDFlag string // --user flag
	UserConfig     *config.UserConfig
}

// Selector resolves which manager a CLI invocation acts for
type Selector struct {
	managerRepo manager.ManagerRepository
	resolver    *common.ManagerResolver
}

// NewSelector creates a new Selector
func NewSelector(managerRepo manager.ManagerRepository) *Selector {
	return &Selector{
		managerRepo: managerRepo,
		resolver:    common.NewManagerResolver(managerRepo),
	}
}

// Select resolves the manager based on priority:
// 1. --manager-id flag
// 2. --user flag
// 3. config default manager
// 4. the only registered manager
func (s *Selector) Select(ctx context.Context, opts *SelectionOptions) (*manager.Manager, error) {
	if opts.ManagerIDFlag != nil || opts.ExternalIDFlag != "" {
		return s.resolver.ResolveManager(ctx, opts.ManagerIDFlag, opts.ExternalIDFlag)
	}

	if opts.UserConfig != nil && (opts.UserConfig.DefaultManagerID != nil || opts.UserConfig.DefaultExternalID != "") {
		m, err := s.resolver.ResolveManager(ctx, opts.UserConfig.DefaultManagerID, opts.UserConfig.DefaultExternalID)
		if err != nil {
			return nil, fmt.Errorf("default manager not found: %w", err)
		}
		return m, nil
	}

	managers, err := s.managerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list managers: %w", err)
	}
	if len(managers) == 1 {
		return managers[0], nil
	}

	return nil, fmt.Errorf("no manager specified: use --manager-id or --user flag, or set a default with 'config set-manager'")
}
