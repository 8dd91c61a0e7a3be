package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleSystem = "system"

	SectionEnhancerSystemPrompt = `You are a Software Architect and Business Analyst who writes IEEE-style Software Requirements Specifications.
You turn short, incomplete or unstructured notes into clear, professional SRS-ready content.`

	// SectionEnhancerPrompt takes the section type and the raw user input.
	SectionEnhancerPrompt = `
Section type: %s
User input:
%s

Enhance the user input while keeping its original intent.

GLOBAL RULES (STRICT)
1. Keep the original meaning. Do not introduce features, actors, workflows or constraints that were not mentioned.
2. When details are missing, stay general. No invented metrics, integrations, platforms or compliance claims.
3. Use formal, neutral language suitable for enterprise and academic SRS documents.
4. The result must be ready to paste into an SRS document.
5. No headings, explanations, references to AI or meta-text.

SECTION FORMAT
%s

OUTPUT
Return valid JSON only: {"content": "<enhanced text>"}
The content itself must not contain JSON, quotes around the whole text, or code fences.
`

	ProblemStatementFormat = `- Write 1-2 short paragraphs.
- Describe the real-world problem, the current pain points and the need for a software solution.
- Keep it concise and avoid feature lists.`

	CoreFeaturesFormat = `- Return a bullet list using hyphen bullets only, one capability per line.
- Each bullet describes one essential functional capability, concise and action-oriented.
- Do not bundle several capabilities in one bullet.`

	PrimaryUserFlowFormat = `- Return a numbered list (1., 2., 3., ...), one step per line.
- Describe the user journey from start to successful completion.
- Steps are concrete but not overly specific. Do not invent screens or roles.`
)
