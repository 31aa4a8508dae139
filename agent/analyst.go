package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/etnz/rentvest"
	"github.com/etnz/rentvest/docs"
	"github.com/etnz/rentvest/renderer"
	"google.golang.org/genai"
)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: DefaultModel,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and keep context of your previous questions.

			The user is a household considering buying properties with a mortgage. They come with
			a scenario already loaded, ask the Analyst about it before answering.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewEconomist returns an expert grounded on Google Search, for interest
// rates, rents and price growth.
func NewEconomist() *Expert {
	e := NewExpert("Economist", `This is an expert of the housing market.
		Ask the Economist for current interest rates, rental yields, price growth or inflation
		whenever you need recent or grounding information.`)
	e.Config = &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert of the residential property market. You leverage Google Search to
			ground your assertions on recent figures, and always say where and when a figure applies.
		`}}},
	}
	return e
}

// NewAnalyst returns an expert that runs the simulations of s.
func NewAnalyst(s *rentvest.Scenario) *Expert {
	lib := []Function{
		portfolioReport(s),
		propertyReport(s),
		query(s),
		topic(),
	}
	e := NewExpert("Analyst", `This is the Analyst. It runs the simulations of the user's scenario:
		each property alone, or all of them as a portfolio sharing the household cash.`)
	e.Config = &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: NewDeclaration(lib)},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
			You are an analyst in charge of the user's property scenario.
			Use the Tools to run the simulations, never compute figures yourself.
			The scenario has %d properties and is simulated over %d years by default.
			Read the topics when you need to understand how the simulation works.
		`, len(s.Properties), s.Years)}}},
	}
	e.Library = NewLibrary(lib)
	return e
}

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return failed(id, f.Decl.Name, err)
	}
	return &genai.FunctionResponse{ID: id, Name: f.Decl.Name, Response: map[string]any{"output": out}}
}

var yearsSchema = &genai.Schema{
	Type:        genai.TypeInteger,
	Description: "The number of simulated years. The scenario horizon is the default.",
}

func portfolioReport(s *rentvest.Scenario) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "PortfolioReport",
			Description: "PortfolioReport simulates all the properties of the scenario together, sharing the household cash.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"years": yearsSchema},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report with the holdings, the feasibility warnings and the yearly series.",
			},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			years, err := intArg(args, "years", s.Years)
			if err != nil {
				return "", err
			}
			r, err := s.PortfolioReport(years)
			if err != nil {
				return "", err
			}
			return renderer.PortfolioMarkdown(r), nil
		},
	}
}

func propertyReport(s *rentvest.Scenario) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "PropertyReport",
			Description: "PropertyReport simulates a single property of the scenario, held alone, and compares it to an index fund.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"index": {
						Type:        genai.TypeInteger,
						Description: "The 0-based index of the property in the scenario.",
					},
					"years": yearsSchema,
				},
				Required: []string{"index"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report with the purchase, the yearly position and the comparison.",
			},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			i, err := intArg(args, "index", 0)
			if err != nil {
				return "", err
			}
			years, err := intArg(args, "years", s.Years)
			if err != nil {
				return "", err
			}
			r, err := s.PropertyReport(i, years)
			if err != nil {
				return "", err
			}
			return renderer.PropertyMarkdown(r), nil
		},
	}
}

func query(s *rentvest.Scenario) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Query",
			Description: `Query evaluates a JSONPath expression against the JSON portfolio report,
			for instance "$.series[10].netWorth" or "$.warnings".`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"path":  {Type: genai.TypeString, Description: "The JSONPath expression."},
					"years": yearsSchema,
				},
				Required: []string{"path"},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The JSON encoded result."},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			path, err := stringArg(args, "path")
			if err != nil {
				return "", err
			}
			years, err := intArg(args, "years", s.Years)
			if err != nil {
				return "", err
			}
			r, err := s.PortfolioReport(years)
			if err != nil {
				return "", err
			}
			res, err := rentvest.Query(r, path)
			if err != nil {
				return "", err
			}
			out, err := json.Marshal(res)
			return string(out), err
		},
	}
}

func topic() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Topic",
			Description: "Topic returns a documentation topic of rvs, the empty name returns the list of topics.",
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{"name": {Type: genai.TypeString, Description: "The topic name."}},
			},
			Response: &genai.Schema{Type: genai.TypeString, Description: "The markdown documentation."},
		},
		Func: func(_ context.Context, args map[string]any) (string, error) {
			name, _ := args["name"].(string)
			return docs.GetTopic(name)
		},
	}
}
