// Command marketctl is a terminal client for the marketplace API. It keeps a
// session on disk and binds a local key's wallet to the signed-in account.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/client"
	"github.com/chainsafe/music-marketplace/pkg/config"
	"github.com/chainsafe/music-marketplace/pkg/session"
	"github.com/chainsafe/music-marketplace/pkg/walletsync"
)

const usageText = `Usage:
  marketctl [-config marketctl.yaml] <command> [flags]

Commands:
  register -email <email> -password <password>
  login    -email <email> -password <password>
  logout
  whoami
  bind     signs the bind message with the key in $WALLET_PRIVATE_KEY
  unbind
  my-nfts
  proceeds
  withdraw -tx <hash>  records a mined withdrawPayments transaction; the key in
                       $WALLET_PRIVATE_KEY must be the registered wallet
`

type cli struct {
	cfg     *config.ClientConfig
	logger  *zap.Logger
	session *session.Session
	api     *client.Client
}

func main() {
	configPath := flag.String("config", "marketctl.yaml", "Path to client configuration file")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadClient(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := config.NewLogger(cfg.Logging, "marketctl")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := newCLI(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to restore session: %v\n", err)
		os.Exit(1)
	}

	if err := c.run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
}

func newCLI(ctx context.Context, cfg *config.ClientConfig, logger *zap.Logger) (*cli, error) {
	sess := session.New(session.NewFileStore(cfg.SessionFile), logger)
	if err := sess.Hydrate(ctx); err != nil {
		return nil, err
	}
	return &cli{
		cfg:     cfg,
		logger:  logger,
		session: sess,
		api:     client.New(cfg.BaseURL, cfg.Timeout, sess),
	}, nil
}

func (c *cli) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.register(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		return c.session.Logout(ctx)
	case "whoami":
		return c.whoami(ctx)
	case "bind":
		return c.bind(ctx)
	case "unbind":
		return c.unbind(ctx)
	case "my-nfts":
		return c.myNFTs(ctx)
	case "proceeds":
		return c.proceeds(ctx)
	case "withdraw":
		return c.withdraw(ctx, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func credentials(name string, args []string) (string, string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	email := fs.String("email", "", "Account email")
	password := fs.String("password", os.Getenv("MARKETCTL_PASSWORD"), "Account password (default $MARKETCTL_PASSWORD)")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if strings.TrimSpace(*email) == "" || *password == "" {
		return "", "", errors.New("-email and -password are required")
	}
	return *email, *password, nil
}

func (c *cli) register(ctx context.Context, args []string) error {
	email, password, err := credentials("register", args)
	if err != nil {
		return err
	}
	usr, err := c.api.Register(ctx, email, password)
	if err != nil {
		return err
	}
	return printJSON(usr)
}

func (c *cli) login(ctx context.Context, args []string) error {
	email, password, err := credentials("login", args)
	if err != nil {
		return err
	}
	usr, err := c.session.Login(ctx, c.api, email, password)
	if err != nil {
		return err
	}
	return printJSON(usr)
}

func (c *cli) whoami(ctx context.Context) error {
	if c.session.State() == session.StateAuthenticated {
		usr, err := c.api.Me(ctx)
		if err == nil {
			if err := c.session.SetUser(ctx, usr); err != nil {
				return err
			}
		} else {
			c.logger.Warn("failed to refresh profile, showing cached session", zap.Error(err))
		}
	}
	snap := c.session.Snapshot()
	return printJSON(map[string]any{
		"state":     snap.State,
		"user":      snap.User,
		"expiresAt": snap.ExpiresAt,
	})
}

// connectWallet connects the local key as the wallet account. The reconciler
// runs whatever transition that enables, including first-time binding.
func (c *cli) connectWallet(ctx context.Context) (*walletsync.Reconciler, error) {
	signer, err := walletsync.KeySignerFromHex(os.Getenv(c.cfg.PrivateKeyEnv))
	if err != nil {
		return nil, fmt.Errorf("load key from $%s: %w", c.cfg.PrivateKeyEnv, err)
	}

	feed := walletsync.NewFeed()
	defer feed.Close()
	events, cancel := feed.Subscribe(1)
	defer cancel()

	rec := walletsync.New(c.session, c.api, signer, c.logger)
	feed.Publish(signer.Address())
	rec.Handle(ctx, <-events)
	return rec, nil
}

func (c *cli) bind(ctx context.Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	rec, err := c.connectWallet(ctx)
	if err != nil {
		return err
	}

	if err := rec.Require(); err != nil {
		return err
	}
	if err := rec.LastError(); err != nil {
		return err
	}
	return printJSON(c.session.User())
}

func (c *cli) unbind(ctx context.Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	usr, err := c.api.RemoveWallet(ctx, c.session.User().Email)
	if err != nil {
		return err
	}
	if err := c.session.SetUser(ctx, usr); err != nil {
		return err
	}
	return printJSON(usr)
}

func (c *cli) myNFTs(ctx context.Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	resp, err := c.api.MyNFTs(ctx)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func (c *cli) proceeds(ctx context.Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	resp, err := c.api.Proceeds(ctx)
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func (c *cli) withdraw(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("withdraw", flag.ContinueOnError)
	txHash := fs.String("tx", "", "Hash of the mined withdrawPayments transaction")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*txHash) == "" {
		return errors.New("-tx is required")
	}

	if err := c.requireSession(); err != nil {
		return err
	}
	rec, err := c.connectWallet(ctx)
	if err != nil {
		return err
	}
	if err := rec.Require(); err != nil {
		return err
	}

	resp, err := c.api.Withdraw(ctx, c.session.User().ID, strings.TrimSpace(*txHash))
	if err != nil {
		return err
	}
	return printJSON(resp)
}

func (c *cli) requireSession() error {
	switch c.session.State() {
	case session.StateAuthenticated:
		return nil
	case session.StateExpired:
		return errors.New("session expired, run login again")
	default:
		return session.ErrNotAuthenticated
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
