package intent

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bomkeeper/cmd/client/cmd/cmdutil"
	"bomkeeper/internal/domain/bom"
	"bomkeeper/internal/domain/form"
	"bomkeeper/internal/domain/intent"
	"bomkeeper/internal/domain/view"
)

var (
	items      []string
	outPath    string
	search     string
	category   string
	selectPage int
)

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Сформировать заявку",
	Long: `Формирует HTML документ заявки для печати.

Позиции задаются флагом --item вида id[:количество[:поставщик]], флаг можно
повторять. Флаг --select-page N добавляет все позиции N-й страницы выбора
(поиск --search по SKU, коду и описанию, фильтр --category).
Документ пишется в --out; "-" означает стандартный вывод.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := cmdutil.FromCommand(cmd)
		if err != nil {
			return err
		}
		if _, err := env.App.LoadAll(cmd.Context()); err != nil {
			return err
		}

		sel := form.NewSelection()
		if selectPage > 0 {
			candidates := view.FilterByCategory(view.SearchProducts(env.App.Records(), search), category)
			page := view.Paginate(candidates, selectPage, env.Config.PageSize)
			sel.SelectPage(page.Items)
		}
		for _, raw := range items {
			if err := applyItem(env, sel, raw); err != nil {
				return err
			}
		}

		var doc bytes.Buffer
		lines, err := env.App.GenerateIntent(sel, &doc)
		if err != nil {
			return err
		}

		if outPath == "-" {
			_, err := doc.WriteTo(os.Stdout)
			return err
		}
		if err := os.WriteFile(outPath, doc.Bytes(), 0o644); err != nil {
			return fmt.Errorf("ошибка записи файла: %w", err)
		}
		if env.JSON {
			return cmdutil.PrintJSON(os.Stdout, lines)
		}
		printSummary(lines)
		fmt.Printf("\nЗаявка сохранена в %s\n", outPath)
		return nil
	},
}

// applyItem разбирает id[:qty[:vendor]] и отмечает позицию в выборе
func applyItem(env *cmdutil.Env, sel *form.Selection, raw string) error {
	parts := strings.SplitN(raw, ":", 3)

	rec, ok := env.App.Record(parts[0])
	if !ok {
		return fmt.Errorf("%w: %s", bom.ErrNotFound, parts[0])
	}
	sel.Select(rec)

	if len(parts) > 1 && parts[1] != "" {
		qty, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("неверное количество %q для позиции %s", parts[1], rec.ID)
		}
		sel.SetQuantity(rec.ID, qty)
	}
	if len(parts) > 2 && parts[2] != "" {
		sel.SetVendor(rec.ID, parts[2])
	}
	return nil
}

func printSummary(lines []intent.LineItem) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "S.NO\tMANUFACTURE\tSKU\tVENDOR NAME\tQUANTITY\tPRICE\tTOTAL\t\n")
	for _, it := range lines {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\t\n",
			it.SNo,
			it.PartNumber,
			it.SKU,
			it.VendorName,
			it.Quantity,
			it.Price.StringFixed(2),
			it.Total.StringFixed(2),
		)
	}
	w.Flush()
	fmt.Printf("GRAND TOTAL: ₹%s\n", intent.GrandTotal(lines).StringFixed(2))
}

func init() {
	GenerateCmd.Flags().StringArrayVarP(&items, "item", "i", nil, "позиция id[:количество[:поставщик]]")
	GenerateCmd.Flags().StringVarP(&outPath, "out", "o", "intent.html", `файл документа ("-" для stdout)`)
	GenerateCmd.Flags().StringVarP(&search, "search", "s", "", "поиск по SKU, коду и описанию для --select-page")
	GenerateCmd.Flags().StringVarP(&category, "category", "c", "", "фильтр по категории для --select-page")
	GenerateCmd.Flags().IntVar(&selectPage, "select-page", 0, "выбрать все позиции страницы N")
}
