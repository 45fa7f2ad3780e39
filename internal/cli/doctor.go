package cli

import (
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"castlog/internal/constants"
	"castlog/internal/keyring"
	"castlog/internal/utils"
	"castlog/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storeReachable = true
	}

	// Check 2: settings and ledger integrity
	if storeReachable {
		if err := checkLedgerIntegrity(ctx); err != nil {
			fmt.Printf("❌ Ledger integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Ledger integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Ledger integrity: SKIPPED (storage not reachable)\n")
	}

	// Check 3: timezone sanity
	if storeReachable {
		if err := checkTimezone(ctx); err != nil {
			fmt.Printf("❌ Timezone: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timezone: OK\n")
		}
	}

	// Check 4: keyring availability (warning only, publishing still optional)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: UNAVAILABLE (casts cannot be published)\n")
	}

	// Check 5: Farcaster credentials (warning only)
	if _, err := keyring.GetAPIKey(); err != nil {
		fmt.Printf("⚠ Farcaster credentials: NOT CONFIGURED\n")
	} else {
		fmt.Printf("✓ Farcaster credentials: OK\n")
	}

	// Check 6: other running instances that could hold the sqlite lock
	if n, err := countOtherInstances(); err != nil {
		fmt.Printf("⚠ Process scan: FAILED (%v)\n", err)
	} else if n > 0 {
		fmt.Printf("⚠ Other %s processes running: %d\n", constants.AppName, n)
	} else {
		fmt.Printf("✓ No competing %s processes\n", constants.AppName)
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// checkLedgerIntegrity verifies every stored entry is well-formed.
func checkLedgerIntegrity(ctx *Context) error {
	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("entry with empty id (text %q)", e.Text)
		}
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Errorf("entry %s has empty text", e.ID)
		}
		if err := validation.ValidateDate(e.Date); err != nil {
			return fmt.Errorf("entry %s: %w", e.ID, err)
		}
	}

	return nil
}

func checkTimezone(ctx *Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("configured timezone %q is not a valid IANA name", settings.Timezone)
	}
	return nil
}

func countOtherInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			count++
		}
	}
	return count, nil
}
