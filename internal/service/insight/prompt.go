package insight

import (
	"fmt"
	"strings"

	"github.com/mamadbah2/bmicare/internal/domain/models"
)

const systemPrompt = "You are a medical education assistant specializing in reproductive health. " +
	"Provide evidence-based, compassionate health education with bold formatting for key medical terms."

const promptTemplate = `You are a medical education specialist providing concise, evidence-based health guidance about BMI and reproductive health.

Patient Profile:
- Age: %s years
- BMI: %s
- Category: %s

Reference findings for this category:
%s
Published statistics:
%s
Provide a structured health analysis with these sections:

**1. BMI Overview**
Explain in plain language what this BMI category means for overall health.

**2. Fertility and Pregnancy**
Describe the specific implications for fertility, the menstrual cycle and pregnancy outcomes, drawing on the findings above.

**3. Recommendations**
Give evidence-based, actionable recommendations covering nutrition, physical activity and when to seek medical consultation.

**4. Body Composition Varies**
Note that BMI is a population-level screening tool and that body composition differs between individuals and ethnic groups.

**5. Professional Support**
Encourage the reader to discuss their results with a qualified healthcare professional.

Write in a supportive, non-alarming and professional tone. Use bold text for key health terms (e.g., **fertility**, **menstrual cycle**, **pregnancy**).

Keep the response between 250 and 400 words.`

// BuildPrompt renders the user prompt for req.
func BuildPrompt(req models.InsightRequest) string {
	return fmt.Sprintf(promptTemplate,
		formatNumber(req.Age),
		formatNumber(req.BMI),
		req.Category,
		formatImpacts(req.Impacts),
		formatStatistics(req.Statistics),
	)
}

func formatNumber(v float64) string {
	return fmt.Sprintf("%g", v)
}

func formatImpacts(impacts models.Impacts) string {
	var sb strings.Builder
	sections := []struct {
		title string
		items []string
	}{
		{"Fertility", impacts.Fertility},
		{"Pregnancy", impacts.Pregnancy},
		{"Menstrual health", impacts.Menstrual},
		{"Long-term health", impacts.LongTerm},
	}
	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		sb.WriteString(section.title)
		sb.WriteString(":\n")
		for _, item := range section.items {
			sb.WriteString("- ")
			sb.WriteString(item)
			sb.WriteString("\n")
		}
	}
	if sb.Len() == 0 {
		return "- none provided\n"
	}
	return sb.String()
}

func formatStatistics(stats []models.Statistic) string {
	if len(stats) == 0 {
		return "- none provided\n"
	}
	var sb strings.Builder
	for _, stat := range stats {
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", stat.Finding, stat.Value, stat.Source)
	}
	return sb.String()
}
