package generate

import (
	"fmt"
	"strings"
)

// The instruction templates below are fixed; caller-supplied parameters
// are appended, and every template ends by demanding JSON-only output.

const emailScenarioPrompt = `You are a cybersecurity education tool that generates realistic phishing email scenarios for training purposes.

Generate a realistic phishing email scenario with the following structure:

1. **Email Metadata:**
   - From (sender email - should be suspicious)
   - Subject (urgent/enticing)
   - Type (e.g., "Phishing", "Legitimate" - mostly phishing but occasionally legitimate for variety)

2. **Email Body:**
   - Write a complete email body that mimics real phishing attempts
   - Include typical phishing tactics (urgency, threats, too-good-to-be-true offers, fake links, etc.)
   - Make it realistic but educational

3. **Red Flags (list 4-6 warning signs):**
   - Identify specific red flags in the email
   - These should be concrete observations (e.g., "Sender address uses free email service", "URL doesn't match company domain")

4. **Explanation:**
   - Brief explanation of why this is or isn't phishing
   - Educational tips for spotting similar attempts

Format your response as valid JSON:
{
  "from": "sender@example.com",
  "subject": "Email subject",
  "type": "Phishing" or "Legitimate",
  "body": "Full email body text...",
  "redFlags": ["flag 1", "flag 2", "flag 3", "flag 4"],
  "explanation": "Educational explanation..."
}

Generate a NEW unique scenario each time. Vary the type of attack (e.g., bank, tech support, shipping, social media, tax, prize/lottery, etc.).`

var difficultyInstructions = map[string]string{
	"easy":   "Make the phishing indicators very obvious (e.g., poor grammar, obvious fake email addresses, suspicious links).",
	"medium": "Make the phishing indicators moderately subtle but still detectable with careful inspection.",
	"hard":   "Make the phishing indicators quite subtle, mimicking sophisticated spear-phishing attempts.",
}

func buildEmailScenarioPrompt(difficulty string) string {
	return fmt.Sprintf("%s\n\nDifficulty level: %s\n%s\n\nRespond ONLY with valid JSON, no additional text.",
		emailScenarioPrompt, strings.ToUpper(difficulty), difficultyInstructions[difficulty])
}

const urlScenarioPrompt = `You are a cybersecurity education tool that generates URL scenarios for phishing awareness training.

Generate a realistic URL scenario that can be either phishing or legitimate. The scenario should help users learn to identify suspicious URLs.

Include variations like:
- Typosquatting (g00gle.com, paypa1.com)
- Suspicious subdomains (secure-netflix-billing.com)
- Wrong top-level domains (.ru, .xyz instead of .com)
- URL with HTTP vs HTTPS
- Legitimate URLs from major companies

Format your response as valid JSON:
{
  "url": "the actual URL",
  "displayText": "what the link appears as (e.g., 'Google Sign In')",
  "isPhishing": true or false,
  "explanation": "Detailed explanation of why this is phishing or legitimate, including specific indicators to look for"
}

Make it educational and realistic. Vary between phishing and legitimate URLs.
Respond ONLY with valid JSON, no additional text.`

const loginScenarioPrompt = `You are a cybersecurity education tool that generates login page scenarios for phishing awareness training.

Generate a realistic login page scenario that can be either phishing or legitimate. The scenario should help users learn to identify fake login pages.

Consider indicators like:
- HTTPS vs HTTP
- Domain authenticity (e.g., facebook.com vs facebook.com.verify-account.net)
- Suspicious subdomains
- Correct company domains
- URL tricks (putting legitimate-looking text before the actual domain)

Format your response as valid JSON:
{
  "siteName": "the name of the website (e.g., 'PayPal', 'Facebook', 'Apple ID')",
  "url": "the URL of the login page",
  "hasHttps": true or false,
  "hasSuspiciousDomain": true or false,
  "isPhishing": true or false,
  "explanation": "Detailed explanation of why this is phishing or legitimate, mentioning specific indicators like HTTPS, domain name, etc."
}

Make it educational and realistic. Vary between phishing and legitimate login pages.
Respond ONLY with valid JSON, no additional text.`

const passwordQuizPrompt = `You are a cybersecurity education tool that generates password security quiz questions.

Generate 10 multiple-choice questions about password security. Each question should:
1. Test knowledge of password security concepts, best practices, or common mistakes
2. Have 4 answer options
3. Have exactly one correct answer
4. Include an educational explanation for why the answer is correct

Topics to cover (choose randomly):
- Password length and complexity requirements
- Password reuse risks
- Password managers
- Two-factor authentication (2FA/MFA)
- Common password attacks (brute force, dictionary attacks, etc.)
- Password storage best practices
- Password change policies
- Passphrases vs passwords
- Personal information in passwords
- Password strength indicators

Format your response as valid JSON:
{
  "questions": [
    {
      "id": 1,
      "question": "Question text here?",
      "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
      "correctAnswer": 0,
      "explanation": "Explanation of why this answer is correct and what users should learn from this question."
    },
    ...
  ]
}

Make the questions varied in difficulty and engaging. Use real-world scenarios when possible.
Respond ONLY with valid JSON, no additional text.`

const phishingQuizPrompt = `You are a cybersecurity education tool that generates phishing awareness quiz questions.

Generate 10 multiple-choice questions about phishing awareness and email security. Each question should:
1. Test knowledge of phishing concepts, detection techniques, or prevention strategies
2. Have 4 answer options
3. Have exactly one correct answer
4. Include an educational explanation for why the answer is correct

Topics to cover (choose randomly):
- What is phishing and its variations (spear phishing, smishing, vishing, whaling)
- Warning signs of phishing emails (urgent language, suspicious links, sender address, etc.)
- How to verify suspicious communications
- URL and domain verification techniques
- Social engineering tactics
- Email authentication and security
- Reporting and responding to phishing attempts
- Multi-factor authentication benefits
- Safe browsing practices
- Real-world phishing examples and scenarios

Format your response as valid JSON:
{
  "questions": [
    {
      "id": 1,
      "question": "Question text here?",
      "options": ["Option 1", "Option 2", "Option 3", "Option 4"],
      "correctAnswer": 0,
      "explanation": "Explanation of why this answer is correct and what users should learn from this question."
    },
    ...
  ]
}

Make the questions varied in difficulty and practical. Include realistic scenarios when possible.
Respond ONLY with valid JSON, no additional text.`

const detectionPrompt = `You are a cybersecurity expert analyzing potential phishing attempts.

Analyze the provided email content or URL and determine if it's likely to be phishing.

Consider the following indicators:
- Sender email address authenticity
- URL domain legitimacy
- Urgency or threatening language
- Grammar and spelling errors
- Requests for sensitive information
- Suspicious links or attachments
- Generic greetings
- Mismatched URLs (display text vs actual link)
- Domain typosquatting

Provide your analysis in the following JSON format:
{
  "isPhishing": true or false,
  "confidence": "high" | "medium" | "low",
  "riskLevel": "critical" | "high" | "medium" | "low" | "safe",
  "redFlags": ["list", "of", "specific", "red", "flags", "found"],
  "analysis": "Detailed explanation of your findings and why you classified it this way",
  "recommendation": "Clear actionable advice for the user"
}

Be thorough and educational in your analysis.
Respond ONLY with valid JSON, no additional text.`

func buildDetectionPrompt(content, contentType string) string {
	desc := "email content"
	if contentType == "url" {
		desc = "URL"
	}
	return fmt.Sprintf("%s\n\nAnalyze this %s:\n\n%s", detectionPrompt, desc, content)
}

const tutorPrompt = `You are an expert cybersecurity tutor providing personalized feedback on phishing detection exercises.

Your role is to:
1. Analyze the user's answer and the correct answer
2. Provide encouraging, educational feedback
3. Explain why the correct answer is right
4. If the user was wrong, gently explain their mistake
5. Offer tips to improve their phishing detection skills
6. Keep responses concise (2-4 sentences) but insightful

Be supportive, patient, and focus on learning outcomes. Use a friendly, encouraging tone.`

func buildTutorPrompt(in TutorInput, isCorrect bool) string {
	var b strings.Builder
	b.WriteString(tutorPrompt)
	b.WriteString("\n\nScenario:\n")
	fmt.Fprintf(&b, "- From: %s\n", in.Scenario.From)
	fmt.Fprintf(&b, "- Subject: %s\n", in.Scenario.Subject)
	groundTruth := "Legitimate"
	if in.Scenario.IsPhishing {
		groundTruth = "Phishing"
	}
	fmt.Fprintf(&b, "- Type: %s\n", groundTruth)
	if len(in.Scenario.RedFlags) > 0 {
		fmt.Fprintf(&b, "- Red Flags: %s\n", strings.Join(in.Scenario.RedFlags, ", "))
	}

	result := "INCORRECT"
	if isCorrect {
		result = "CORRECT"
	}
	fmt.Fprintf(&b, "\nUser's Answer: %s\nCorrect Answer: %s\nResult: %s\n", in.UserAnswer, in.CorrectAnswer, result)

	if in.Context != "" {
		fmt.Fprintf(&b, "\nAdditional Context: %s\n", in.Context)
	}

	b.WriteString("\nProvide personalized feedback for this student. If they were correct, reinforce their good judgment and highlight what they did well. If incorrect, gently explain why and help them learn to spot similar threats.\n\nKeep your response to 2-4 sentences, friendly and encouraging.")
	return b.String()
}
