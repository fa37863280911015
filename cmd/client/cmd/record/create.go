package record

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"bomkeeper/cmd/client/cmd/cmdutil"
	"bomkeeper/internal/domain/form"
)

var (
	itemCode    string
	sku         string
	description string
	category    string
	price       string
	orderLink   string
	vendors     []string
	fromSKU     string
)

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать новую запись",
	Long: `Создание новой записи каталога.

Обязательны --item-code, --sku, --description и хотя бы один --vendor.
Поставщик задается строкой "имя,телефон,адрес"; флаг можно повторять.
Флаг --from-sku заполняет поля товара из существующей записи с этим SKU,
явно заданные флаги имеют приоритет.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := load(cmd)
		if err != nil {
			return err
		}

		ed := form.NewEditor(env.Confirm)
		if fromSKU != "" && !ed.Product.FillFromSKU(env.App.Records(), fromSKU) {
			return fmt.Errorf("SKU %s не найден", fromSKU)
		}
		applyProductFlags(cmd.Flags(), ed)
		if err := addVendors(ed, vendors); err != nil {
			return err
		}

		rec, err := env.App.Save(cmd.Context(), ed)
		if err != nil {
			return err
		}

		if env.JSON {
			return cmdutil.PrintJSON(os.Stdout, rec)
		}
		return nil
	},
}

// applyProductFlags переносит в черновик только явно заданные флаги
func applyProductFlags(flags *pflag.FlagSet, ed *form.Editor) {
	set := func(name string, dst *string, value string) {
		if flags.Changed(name) {
			*dst = value
		}
	}
	set("item-code", &ed.Product.ItemCode, itemCode)
	set("sku", &ed.Product.SKU, sku)
	set("description", &ed.Product.ProductDescription, description)
	set("category", &ed.Product.Category, category)
	set("price", &ed.Product.ApproxPrice, price)
	set("order-link", &ed.Product.OrderLink, orderLink)
}

func addVendors(ed *form.Editor, raw []string) error {
	for _, s := range raw {
		v, err := parseVendor(s)
		if err != nil {
			return fmt.Errorf("поставщик %q: %w", s, err)
		}
		if _, err := ed.Vendors.Add(v); err != nil {
			return fmt.Errorf("поставщик %q: %w", s, err)
		}
	}
	return nil
}

func addProductFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&itemCode, "item-code", "", "код позиции")
	cmd.Flags().StringVar(&sku, "sku", "", "SKU")
	cmd.Flags().StringVar(&description, "description", "", "описание товара")
	cmd.Flags().StringVar(&category, "category", "", "категория")
	cmd.Flags().StringVar(&price, "price", "", "ориентировочная цена")
	cmd.Flags().StringVar(&orderLink, "order-link", "", "ссылка для заказа")
	cmd.Flags().StringArrayVar(&vendors, "vendor", nil, `поставщик "имя,телефон,адрес" (можно повторять)`)
}

func init() {
	addProductFlags(CreateCmd)
	CreateCmd.Flags().StringVar(&fromSKU, "from-sku", "", "заполнить поля из записи с этим SKU")
}
