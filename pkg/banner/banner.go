package banner

import (
	"fmt"

	"github.com/Eloura74/Backbone/pkg/config"
)

const banner = `
██████╗  █████╗  ██████╗██╗  ██╗██████╗  ██████╗ ███╗   ██╗███████╗
██╔══██╗██╔══██╗██╔════╝██║ ██╔╝██╔══██╗██╔═══██╗████╗  ██║██╔════╝
██████╔╝███████║██║     █████╔╝ ██████╔╝██║   ██║██╔██╗ ██║█████╗
██╔══██╗██╔══██║██║     ██╔═██╗ ██╔══██╗██║   ██║██║╚██╗██║██╔══╝
██████╔╝██║  ██║╚██████╗██║  ██╗██████╔╝╚██████╔╝██║ ╚████║███████╗
╚═════╝ ╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═══╝╚══════╝
`

// Print shows startup info: effective config and the main endpoints.
func Print(eff config.EffectiveConfigResult, version string) {
	fmt.Print(banner)
	fmt.Println("== Config =====================================================")
	fmt.Printf("Listen:   %s\n", eff.Addr)
	fmt.Printf("DB Path:  %s\n", eff.DBPath)
	if version != "" {
		fmt.Printf("Version:  %s\n", version)
	}
	fmt.Printf("Config:   %s\n", eff.Source)

	fmt.Println("\n== Endpoints ==================================================")
	fmt.Println("POST   /api/v1/inbox                 - Add an inbox item")
	fmt.Println("GET    /api/v1/inbox?status=pending  - List items")
	fmt.Println("POST   /api/v1/inbox/{id}/generate   - Draft a document from a template")
	fmt.Println("POST   /api/v1/inbox/{id}/process    - Archive the item into a memory trace")
	fmt.Println("GET    /api/v1/memory                - List memory traces")
	fmt.Println("GET    /api/v1/dashboard/stats       - Aggregate counts")
	fmt.Println("GET    /docs/                        - API docs (swagger)")
	fmt.Println("GET    /metrics                      - Prometheus metrics")

	fmt.Println("\n== Production? =================================================")
	keys := 0
	if eff.Config != nil {
		keys = len(eff.Config.Security.APIKeys.Backend) +
			len(eff.Config.Security.APIKeys.Frontend) +
			len(eff.Config.Security.APIKeys.Admin)
	}
	if keys > 0 {
		fmt.Printf("- API keys: OK (%d)\n", keys)
	} else if eff.Config != nil && eff.Config.Security.APIKeys.AllowUnauth {
		fmt.Println("- API keys: NONE (allow_unauth enabled - dev only)")
	} else {
		fmt.Println("- API keys: MISSING (configure security.api_keys)")
	}
	fmt.Println("- Set a durable storage path (--db) and enable retention for archived items")
	fmt.Println()
}
