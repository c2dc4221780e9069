package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"pizzaria-be/internal/cache"
	"pizzaria-be/internal/catalog"
	"pizzaria-be/internal/client"
	"pizzaria-be/internal/config"
	"pizzaria-be/internal/logger"
	"pizzaria-be/internal/order"
	"pizzaria-be/internal/stats"

	"go.uber.org/zap"
)

const usage = `usage: pizzaria <command> [flags]

commands:
  catalog   list the menu (-categoria, -busca)
  list      list the open orders
  create    place an order
  delete    close an order (-id)
  stats     sales dashboard
`

func main() {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	local, err := cache.Open(cfg.CachePath)
	if err != nil {
		logger.L().Fatal("offline cache unavailable", zap.Error(err))
	}
	defer local.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := client.New(client.NewHTTPRemote(cfg.APIURL, cfg.APITimeout), local, logger.L())
	if err := run(ctx, os.Args[1:], os.Stdout, c); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, c *client.Client) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errors.New("missing command")
	}

	switch args[0] {
	case "catalog":
		return runCatalog(args[1:], out)
	case "list":
		return runList(ctx, out, c)
	case "create":
		return runCreate(ctx, args[1:], out, c)
	case "delete":
		return runDelete(ctx, args[1:], out, c)
	case "stats":
		return runStats(ctx, out, c)
	case "help", "-h", "--help":
		fmt.Fprint(out, usage)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runCatalog(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	category := fs.String("categoria", catalog.FilterAll, "pizza, sobremesa, bebida or all")
	search := fs.String("busca", "", "search terms")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOME\tCATEGORIA\tPREÇO\tINGREDIENTES")
	for _, p := range catalog.Filter(*category, *search) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n", p.ID, p.Name, p.Category, p.Price, strings.Join(p.Ingredients, ", "))
	}
	return tw.Flush()
}

func runList(ctx context.Context, out io.Writer, c *client.Client) error {
	items, err := c.GetOrdersWithNotes(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCLIENTE\tITEM\tQTD\tTAMANHO\tMASSA\tSEM\tTOTAL")
	for _, it := range items {
		without := strings.Join(it.RemovedIngredients, ", ")
		if without == "" {
			without = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%.2f\n",
			it.ID, it.Customer, it.Name, it.Quantity, it.Size, it.Crust, without, it.Total())
	}
	return tw.Flush()
}

func runCreate(ctx context.Context, args []string, out io.Writer, c *client.Client) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	item := fs.String("item", "", "product id or name")
	qty := fs.Int("qtd", 1, "quantity")
	size := fs.String("tamanho", "", "size (pizzas default to Média)")
	crust := fs.String("massa", catalog.CrustTraditional, "crust: Fina, Tradicional or Recheada")
	without := fs.String("sem", "", "comma separated ingredients to remove")
	customer := fs.String("cliente", "", "customer name")
	phone := fs.String("telefone", "", "customer phone")
	address := fs.String("endereco", "", "delivery address")
	payment := fs.String("pagamento", order.PaymentCash, "Dinheiro, Cartão or PIX")
	taxID := fs.String("cpf", "", "tax id for the invoice")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, ok := findProduct(*item)
	if !ok {
		return fmt.Errorf("unknown product %q", *item)
	}

	orderSize := *size
	if orderSize == "" {
		orderSize = catalog.SizeStandard
		if p.Category == catalog.CategoryPizza {
			orderSize = catalog.SizeMedium
		}
	}

	created, err := c.CreateOrder(ctx, order.OrderItem{
		ProductID:          p.ID,
		Name:               p.Name,
		Category:           p.Category,
		UnitPrice:          p.Price,
		Quantity:           *qty,
		Size:               orderSize,
		Crust:              *crust,
		RemovedIngredients: splitList(*without),
		Customer:           *customer,
		Phone:              *phone,
		Address:            *address,
		PaymentMethod:      *payment,
		TaxID:              *taxID,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "pedido %d criado: %d x %s, total R$ %.2f\n", created.ID, created.Quantity, created.Name, created.Total())
	return nil
}

func runDelete(ctx context.Context, args []string, out io.Writer, c *client.Client) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	id := fs.Int64("id", -1, "order id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id < 0 {
		return errors.New("-id is required")
	}

	if err := c.DeleteOrder(ctx, *id); err != nil {
		return err
	}
	fmt.Fprintf(out, "pedido %d finalizado\n", *id)
	return nil
}

func runStats(ctx context.Context, out io.Writer, c *client.Client) error {
	items, err := c.GetOrders(ctx)
	if err != nil {
		return err
	}
	s := stats.Summarize(items)

	fmt.Fprintf(out, "pedidos: %d\nreceita: R$ %.2f\n\n", s.Orders, s.Revenue)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORIA\tQTD")
	for _, cs := range s.Categories {
		fmt.Fprintf(tw, "%s\t%d\n", cs.Name, cs.Quantity)
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "TOP ITEM\tRECEITA")
	for _, r := range s.TopRevenue {
		fmt.Fprintf(tw, "%s\t%.2f\n", r.Name, r.Revenue)
	}
	return tw.Flush()
}

func findProduct(ref string) (catalog.Product, bool) {
	if p, ok := catalog.ByID(ref); ok {
		return p, true
	}
	for _, p := range catalog.All() {
		if strings.EqualFold(p.Name, ref) {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
