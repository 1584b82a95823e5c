// Package letter renders the acknowledgment letter sent to customers.
package letter

import (
	"bytes"
	"fmt"
	"html/template"

	"order-taking/placeorder/pipeline"
)

var acknowledgmentTmpl = template.Must(template.New("acknowledgment").Parse(`<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>Thank you for your order {{.OrderID}}.</p>
<table>
{{- range .Lines}}
<tr><td>{{.ProductCode}}</td><td>{{.Quantity}}</td><td>{{.LinePrice}}</td></tr>
{{- end}}
</table>
<p>Total: {{.Total}}</p>
`))

type line struct {
	ProductCode string
	Quantity    string
	LinePrice   string
}

type view struct {
	FirstName string
	LastName  string
	OrderID   string
	Lines     []line
	Total     string
}

// Render renders the acknowledgment letter for order. Customer-supplied text
// is HTML-escaped.
func Render(order pipeline.PricedOrder) pipeline.HTMLString {
	name := order.CustomerInfo().Name()
	v := view{
		FirstName: name.FirstName().Value(),
		LastName:  name.LastName().Value(),
		OrderID:   order.OrderID().Value(),
		Total:     order.AmountToBill().String(),
	}
	for _, l := range order.Lines() {
		v.Lines = append(v.Lines, line{
			ProductCode: l.ProductCode().Value(),
			Quantity:    l.Quantity().Value().String(),
			LinePrice:   formatMinor(l.LinePrice().Value()),
		})
	}

	var buf bytes.Buffer
	if err := acknowledgmentTmpl.Execute(&buf, v); err != nil {
		// writes to a bytes.Buffer cannot fail
		panic(err)
	}
	return pipeline.HTMLString(buf.String())
}

func formatMinor(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
