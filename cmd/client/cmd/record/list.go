package record

import (
	"encoding/csv"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bomkeeper/cmd/client/cmd/cmdutil"
	"bomkeeper/internal/domain/bom"
	"bomkeeper/internal/domain/view"
)

var (
	listFormat   string
	listSearch   string
	listCategory string
	listSort     string
	listDesc     bool
	listPage     int
	listPageSize int
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Просмотр записей каталога с поиском по всем полям, фильтром по
категории и сортировкой по любой колонке.

Поддерживается пагинация через флаги --page и --page-size; при
--page-size 0 все записи выводятся на одной странице.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}

		q := view.Query{
			Search:   listSearch,
			Category: listCategory,
			Page:     listPage,
			PageSize: listPageSize,
		}
		if listSort != "" {
			field, ok := bom.CanonicalField(listSort)
			if !ok {
				return fmt.Errorf("неизвестная колонка сортировки: %s", listSort)
			}
			q.Sort = view.SortState{Field: field, Direction: view.Asc}
			if listDesc {
				q.Sort = q.Sort.Toggle(field)
			}
		}

		page := env.App.View(q)

		format := listFormat
		if env.JSON {
			format = "json"
		}

		switch format {
		case "json":
			return cmdutil.PrintJSON(os.Stdout, page)
		case "table":
			return printRecordsTable(page)
		case "csv":
			return printRecordsCSV(page)
		default:
			return printRecordsSimple(page)
		}
	},
}

func printRecordsSimple(page view.Page) error {
	if len(page.Items) == 0 {
		fmt.Println("Записи не найдены")
		return nil
	}

	fmt.Printf("Найдено записей: %d\n\n", page.Total)

	for _, rec := range page.Items {
		fmt.Printf("[%s] %s (%s)\n", rec.ID, rec.ProductDescription, rec.SKU)
		fmt.Printf("   Item code: %s | Category: %s | Price: %s | Vendors: %d\n",
			rec.ItemCode, rec.Category, rec.ApproxPrice, len(rec.Vendors))
		fmt.Println()
	}

	printPageFooter(page)
	return nil
}

func printRecordsTable(page view.Page) error {
	if len(page.Items) == 0 {
		fmt.Println("Записи не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tItem code\tSKU\tDescription\tCategory\tPrice\tVendors\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t\n")

	for _, rec := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			rec.ID,
			rec.ItemCode,
			rec.SKU,
			cmdutil.Truncate(rec.ProductDescription, 30),
			rec.Category,
			rec.ApproxPrice,
			cmdutil.Truncate(rec.Value(bom.FieldVendors), 30),
		)
	}

	w.Flush()
	fmt.Println()
	printPageFooter(page)
	return nil
}

func printRecordsCSV(page view.Page) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write(bom.Fields); err != nil {
		return err
	}

	for _, rec := range page.Items {
		row := make([]string, len(bom.Fields))
		for i, f := range bom.Fields {
			row[i] = rec.Value(f)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func printPageFooter(page view.Page) {
	if page.Pages > 1 {
		fmt.Printf("Страница %d из %d, всего записей: %d\n", page.Number, page.Pages, page.Total)
	}
}

func init() {
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "формат вывода (simple, table, json, csv)")
	ListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "поиск по всем полям")
	ListCmd.Flags().StringVarP(&listCategory, "category", "c", "", "фильтр по категории")
	ListCmd.Flags().StringVar(&listSort, "sort", "", "колонка сортировки")
	ListCmd.Flags().BoolVar(&listDesc, "desc", false, "сортировка по убыванию")
	ListCmd.Flags().IntVar(&listPage, "page", 1, "номер страницы")
	ListCmd.Flags().IntVar(&listPageSize, "page-size", 0, "записей на странице (0 - все)")
}
