// Package pdf implementa a geração do Comprovante de Protocolo de uma
// proposição legislativa.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│            COMPROVANTE DE PROTOCOLO (título centrado)        │
//	│   Sistema de Gerenciamento de Proposições Legislativas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DADOS DA PROPOSIÇÃO: ID / Tipo / Título / Autor / Status    │
//	│                       Data de Envio / Data de Protocolo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMENTA: texto corrido                                       │
//	│                                                              │
//	│  RODAPÉ: Documento gerado em <data>                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/camaradigital/proposicoes-api/internal/application/usecase"
)

var (
	corPrimaria = &props.Color{Red: 30, Green: 58, Blue: 95}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoComprovanteGenerator implementa usecase.ComprovantePDFGenerator
// usando Maroto v2.
type MarotoComprovanteGenerator struct{}

// NewMarotoComprovanteGenerator constrói o gerador.
func NewMarotoComprovanteGenerator() *MarotoComprovanteGenerator {
	return &MarotoComprovanteGenerator{}
}

// GerarComprovante gera o PDF e devolve seus bytes.
func (g *MarotoComprovanteGenerator) GerarComprovante(dados usecase.ComprovanteDados) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Comprovante de Protocolo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(cabecalhoRows()...)
	m.AddRows(line.NewRow(2, props.Line{Color: corPrimaria, Thickness: 0.5}))
	m.AddRows(dadosRows(dados)...)
	m.AddRows(line.NewRow(2, props.Line{Color: corPrimaria, Thickness: 0.3}))
	m.AddRows(ementaRows(dados)...)
	m.AddRows(line.NewRow(6))
	m.AddRows(rodapeRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// cabecalhoRows: título e subtítulo centrados.
func cabecalhoRows() []core.Row {
	return []core.Row{
		text.NewRow(10, "Comprovante de Protocolo", props.Text{
			Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: corPrimaria,
		}),
		text.NewRow(8, "Sistema de Gerenciamento de Proposições Legislativas", props.Text{
			Size: 12, Align: align.Center, Color: corCinza,
		}),
	}
}

// dadosRows: bloco de dados da proposição, um campo por linha.
func dadosRows(dados usecase.ComprovanteDados) []core.Row {
	campo := func(rotulo, valor string) core.Row {
		return row.New(7).Add(
			col.New(3).Add(text.New(rotulo, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			})),
			col.New(9).Add(text.New(valor, props.Text{Size: 10, Top: 1})),
		)
	}

	rows := []core.Row{
		text.NewRow(9, "Dados da Proposição", props.Text{
			Style: fontstyle.Bold, Size: 12, Color: corPrimaria, Top: 2,
		}),
		campo("ID:", dados.ID),
		campo("Tipo:", dados.Tipo),
		campo("Título:", dados.Titulo),
		campo("Autor:", dados.AutorNome),
		campo("Status:", dados.StatusLabel),
		campo("Data de Envio:", formatarData(dados.DataEnvio)),
	}
	if dados.DataProtocolo != nil {
		rows = append(rows, campo("Data de Protocolo:", formatarData(dados.DataProtocolo)))
	}
	return rows
}

// ementaRows: rótulo em negrito e texto corrido da ementa.
func ementaRows(dados usecase.ComprovanteDados) []core.Row {
	return []core.Row{
		text.NewRow(9, "Ementa:", props.Text{
			Style: fontstyle.Bold, Size: 12, Color: corPrimaria, Top: 2,
		}),
		text.NewRow(24, dados.Ementa, props.Text{Size: 10, Top: 1}),
	}
}

// rodapeRow: data de geração centrada.
func rodapeRow() core.Row {
	gerado := time.Now().Format("02/01/2006 15:04")
	return text.NewRow(6, "Documento gerado em: "+gerado, props.Text{
		Size: 9, Align: align.Center, Color: corCinza,
	})
}

// formatarData converte ISO 8601 para o formato brasileiro dd/MM/yyyy HH:mm.
// Datas ausentes ou ilegíveis viram travessão.
func formatarData(iso *string) string {
	if iso == nil || *iso == "" {
		return "—"
	}
	t, err := time.Parse(time.RFC3339, *iso)
	if err != nil {
		return *iso
	}
	return t.Format("02/01/2006 15:04")
}
