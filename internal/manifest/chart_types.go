package manifest

// ChartType is the chart-type tag of a dataset.
type ChartType string

const (
	ChartLine      ChartType = "line"
	ChartStepline  ChartType = "stepline"
	ChartBar       ChartType = "bar"
	ChartColumn    ChartType = "column"
	ChartLollipop  ChartType = "lollipop"
	ChartHistogram ChartType = "histogram"
	ChartScatter   ChartType = "scatter"
	ChartHeatmap   ChartType = "heatmap"
	ChartPie       ChartType = "pie"
	ChartDonut     ChartType = "donut"
)

// ChartFamily groups chart types that render alike.
type ChartFamily string

const (
	FamilyLine    ChartFamily = "line"
	FamilyBar     ChartFamily = "bar"
	FamilyScatter ChartFamily = "scatter"
	FamilyPastry  ChartFamily = "pastry"
)

var chartFamilies = map[ChartType]ChartFamily{
	ChartLine:      FamilyLine,
	ChartStepline:  FamilyLine,
	ChartBar:       FamilyBar,
	ChartColumn:    FamilyBar,
	ChartLollipop:  FamilyBar,
	ChartHistogram: FamilyBar,
	ChartScatter:   FamilyScatter,
	ChartHeatmap:   FamilyScatter,
	ChartPie:       FamilyPastry,
	ChartDonut:     FamilyPastry,
}

// KnownChartTypes lists every chart type in declaration order.
func KnownChartTypes() []ChartType {
	return []ChartType{
		ChartLine, ChartStepline, ChartBar, ChartColumn, ChartLollipop,
		ChartHistogram, ChartScatter, ChartHeatmap, ChartPie, ChartDonut,
	}
}

// Family returns the chart family of t and false for unknown types.
func (t ChartType) Family() (ChartFamily, bool) {
	f, ok := chartFamilies[t]
	return f, ok
}

func (t ChartType) IsLine() bool {
	f, _ := t.Family()
	return f == FamilyLine
}

func (t ChartType) IsBar() bool {
	f, _ := t.Family()
	return f == FamilyBar
}

func (t ChartType) IsScatter() bool {
	f, _ := t.Family()
	return f == FamilyScatter
}

func (t ChartType) IsPastry() bool {
	f, _ := t.Family()
	return f == FamilyPastry
}
