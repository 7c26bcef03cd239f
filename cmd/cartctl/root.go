package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/georgemunganga/pooja-store/internal/cartsync"
	"github.com/georgemunganga/pooja-store/internal/platform/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	api     string
	token   string
	user    string
	file    string
	redis   string
	device  string
	verbose bool

	logger *zap.Logger
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

func newRootCmd(out io.Writer, log *zap.Logger) *cobra.Command {
	opts := &options{logger: log}

	root := &cobra.Command{
		Use:          "cartctl",
		Short:        "Inspect and edit your Pooja Store cart",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			l, err := logger.New(false, level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			opts.logger = l
			return nil
		},
	}
	root.SetOut(out)

	f := root.PersistentFlags()
	f.StringVar(&opts.api, "api", envOr("CARTCTL_API", "http://localhost:8000"), "Storefront API base URL (or set CARTCTL_API)")
	f.StringVar(&opts.token, "token", os.Getenv("CARTCTL_TOKEN"), "Session token; empty means anonymous (or set CARTCTL_TOKEN)")
	f.StringVar(&opts.user, "user", os.Getenv("CARTCTL_USER"), "User id the token belongs to (or set CARTCTL_USER)")
	f.StringVar(&opts.file, "file", envOr("CARTCTL_FILE", defaultCartFile()), "Local cart file")
	f.StringVar(&opts.redis, "redis", os.Getenv("CARTCTL_REDIS"), "Keep the local cart in Redis instead of a file (redis:// URL)")
	f.StringVar(&opts.device, "device", envOr("CARTCTL_DEVICE", hostname()), "Device name used for the Redis cart key")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.run(cmd, nil)
			},
		},
		&cobra.Command{
			Use:   "add <product-id> [quantity]",
			Short: "Add a product to the cart",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				qty := 1
				if len(args) == 2 {
					n, err := strconv.Atoi(args[1])
					if err != nil {
						return fmt.Errorf("quantity %q is not a number", args[1])
					}
					qty = n
				}
				return opts.run(cmd, func(ctx context.Context, s *session) error {
					p, err := s.client.Product(ctx, args[0])
					if err != nil {
						return fmt.Errorf("look up product %s: %w", args[0], err)
					}
					s.cart.AddToCart(p, qty)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "set <product-id> <quantity>",
			Short: "Set the quantity of a line; zero removes it",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				qty, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("quantity %q is not a number", args[1])
				}
				return opts.run(cmd, func(ctx context.Context, s *session) error {
					s.cart.UpdateQuantity(args[0], qty)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove <product-id>",
			Short: "Remove a line from the cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.run(cmd, func(ctx context.Context, s *session) error {
					s.cart.RemoveFromCart(args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.run(cmd, func(ctx context.Context, s *session) error {
					s.cart.ClearCart()
					return nil
				})
			},
		},
	)
	return root
}

// =============================================================================
// SESSION
// =============================================================================

type session struct {
	cart   *cartsync.Cart
	client *cartsync.RemoteClient
}

// run opens a cart session, applies mutate when given, waits for the sinks and
// prints the resulting cart.
func (o *options) run(cmd *cobra.Command, mutate func(context.Context, *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	local, closeLocal, err := o.localStore(ctx)
	if err != nil {
		return err
	}
	defer closeLocal()

	client := cartsync.NewRemoteClient(o.api, &http.Client{Timeout: 10 * time.Second})
	s := &session{
		client: client,
		cart: cartsync.NewCart(cartsync.NewStore(), cartsync.Config{
			Local:  cartsync.NewLocalSink(local),
			Remote: cartsync.NewRemoteSink(client),
			Loader: cartsync.NewLoader(client, local, o.logger.Named("loader")),
			Logger: o.logger.Named("cart"),
		}),
	}

	phase := s.cart.SetSession(ctx, cartsync.Session{Token: o.token, UserID: o.user})
	o.logger.Debug("cart session ready", zap.Stringer("phase", phase))

	if mutate != nil {
		if err := mutate(ctx, s); err != nil {
			return err
		}
		s.cart.Wait()
	}

	printCart(cmd.OutOrStdout(), s.cart.State())
	return nil
}

func (o *options) localStore(ctx context.Context) (cartsync.LocalStore, func(), error) {
	if o.redis == "" {
		fs := cartsync.NewFileStore(o.file)
		o.logger.Debug("local cart in file", zap.String("path", fs.Path()))
		return fs, func() {}, nil
	}
	opt, err := redis.ParseURL(o.redis)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	o.logger.Debug("local cart in redis", zap.String("key", cartsync.RedisKey(o.device)))
	return cartsync.NewRedisStore(client, o.device), func() { client.Close() }, nil
}

func printCart(w io.Writer, st cartsync.State) {
	if len(st.Items) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	for _, l := range st.Items {
		fmt.Fprintf(w, "%-38s %-28s %3d x %7s = %8s\n",
			l.Product.ID, l.Product.Name, l.Quantity,
			rupees(l.Product.Price), rupees(l.Product.Price*int64(l.Quantity)))
	}
	fmt.Fprintf(w, "%d item(s), total %s\n", st.ItemCount, rupees(st.Total))
}

// ── helpers ──────────────────────────────────────────────────────────────────

func rupees(amount int64) string { return "₹" + strconv.FormatInt(amount, 10) }

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func defaultCartFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cart.json"
	}
	return filepath.Join(dir, "pooja-store", "cart.json")
}

func hostname() string {
	h, err := os.Hostname()
	if err != nil {
		return "default"
	}
	return h
}
