package quiz

// PasswordBank returns the static password-security quiz. The returned
// slice is a copy; the underlying bank is never mutated.
func PasswordBank() []Question {
	return copyBank(passwordBank)
}

// PhishingBank returns the static phishing-awareness quiz.
func PhishingBank() []Question {
	return copyBank(phishingBank)
}

func copyBank(bank []Question) []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

var passwordBank = []Question{
	{
		ID:            1,
		Question:      "What is the minimum recommended length for a strong password?",
		Options:       []string{"6 characters", "8 characters", "12 characters", "20 characters"},
		CorrectAnswer: 2,
		Explanation:   "Security experts recommend passwords of at least 12-16 characters. Longer passwords are exponentially harder to crack through brute force attacks.",
	},
	{
		ID:            2,
		Question:      "Which of the following is the STRONGEST password?",
		Options:       []string{"password123", "JohnDoe1990", "Tr0ub4dor&3", "correct-horse-battery-staple"},
		CorrectAnswer: 3,
		Explanation:   "The passphrase 'correct-horse-battery-staple' is strongest because it's long, unpredictable, and doesn't follow common patterns. Length and randomness are more important than complexity.",
	},
	{
		ID:       3,
		Question: "What is the main risk of reusing the same password across multiple accounts?",
		Options: []string{
			"It's harder to remember",
			"If one account is breached, all accounts are at risk",
			"It violates terms of service",
			"Passwords expire faster",
		},
		CorrectAnswer: 1,
		Explanation:   "If one service is compromised and your password is leaked, attackers will try that password on other popular services. Using unique passwords for each account contains the damage to just one account.",
	},
	{
		ID:       4,
		Question: "Which tool is MOST recommended for managing multiple complex passwords?",
		Options: []string{
			"Writing them in a notebook",
			"Saving them in a text file on your computer",
			"Using a reputable password manager",
			"Using the same password with slight variations",
		},
		CorrectAnswer: 2,
		Explanation:   "Password managers securely encrypt and store your passwords, generate strong random passwords, and autofill credentials. They're much more secure than writing passwords down or reusing them.",
	},
	{
		ID:       5,
		Question: "What does two-factor authentication (2FA) add to password security?",
		Options: []string{
			"It makes passwords longer",
			"It requires a second form of verification beyond the password",
			"It changes your password automatically",
			"It encrypts your password",
		},
		CorrectAnswer: 1,
		Explanation:   "2FA adds an extra layer of security by requiring something you have (like a phone) or something you are (like a fingerprint) in addition to something you know (your password).",
	},
	{
		ID:       6,
		Question: "Which of these should you AVOID when creating a password?",
		Options: []string{
			"Using special characters",
			"Making it longer than 12 characters",
			"Including your name or birthdate",
			"Using a mix of uppercase and lowercase",
		},
		CorrectAnswer: 2,
		Explanation:   "Personal information like names, birthdates, addresses, or pet names should be avoided because attackers can often find this information through social media or public records.",
	},
	{
		ID:       7,
		Question: "How often should you change a password that hasn't been compromised?",
		Options: []string{
			"Every week",
			"Every month",
			"Only when there's evidence of a breach",
			"Never",
		},
		CorrectAnswer: 2,
		Explanation:   "Modern security guidance suggests changing passwords only when necessary (like after a breach). Frequent mandatory changes often lead to weaker passwords and poor practices like incremental changes.",
	},
	{
		ID:       8,
		Question: "What makes a password 'unpredictable'?",
		Options: []string{
			"Using all capital letters",
			"Avoiding common words, patterns, and personal information",
			"Using only numbers",
			"Making it exactly 8 characters long",
		},
		CorrectAnswer: 1,
		Explanation:   "Unpredictability comes from avoiding patterns that attackers expect: dictionary words, keyboard patterns, common substitutions (like '@' for 'a'), and personal information.",
	},
	{
		ID:       9,
		Question: "Which type of attack tries all possible password combinations until finding the correct one?",
		Options: []string{
			"Phishing attack",
			"Brute force attack",
			"Social engineering",
			"Man-in-the-middle attack",
		},
		CorrectAnswer: 1,
		Explanation:   "A brute force attack systematically tries every possible combination of characters until the correct password is found. Longer, more complex passwords exponentially increase the time required for such attacks.",
	},
	{
		ID:       10,
		Question: "What is the BEST way to secure accounts that store sensitive information?",
		Options: []string{
			"Use the same strong password across all accounts",
			"Use a unique strong password AND enable multi-factor authentication",
			"Change your password every week",
			"Use a short password but change it frequently",
		},
		CorrectAnswer: 1,
		Explanation:   "The strongest security comes from combining a unique, strong password with multi-factor authentication (2FA/MFA). This layered approach ensures that even if your password is compromised, attackers still cannot access your account.",
	},
}

var phishingBank = []Question{
	{
		ID:       1,
		Question: "What is phishing?",
		Options: []string{
			"A type of computer virus",
			"A cyberattack that tricks people into revealing sensitive information",
			"A legitimate email marketing technique",
			"A way to catch fish using technology",
		},
		CorrectAnswer: 1,
		Explanation:   "Phishing is a cyberattack where criminals impersonate trusted entities to deceive victims into sharing passwords, credit card numbers, or other sensitive data.",
	},
	{
		ID:       2,
		Question: "Which of the following is a common sign of a phishing email?",
		Options: []string{
			"Personalized greeting with your full name",
			"Official company logo and branding",
			"Urgent language demanding immediate action",
			"Clear contact information",
		},
		CorrectAnswer: 2,
		Explanation:   "Phishing emails often use urgent or threatening language to create panic and pressure victims into acting without thinking critically. This is a major red flag.",
	},
	{
		ID:       3,
		Question: "You receive an email from 'support@paypa1.com' asking you to verify your account. What should you do?",
		Options: []string{
			"Click the link immediately to secure your account",
			"Reply with your account information",
			"Recognize it as likely phishing (notice 'paypa1' instead of 'paypal') and delete it",
			"Forward it to all your contacts to warn them",
		},
		CorrectAnswer: 2,
		Explanation:   "The misspelled domain ('paypa1' with a number 1 instead of the letter 'l') is a classic phishing technique. Never click links in suspicious emails. Go directly to the official website by typing the URL yourself.",
	},
	{
		ID:       4,
		Question: "Which type of phishing specifically targets individuals or organizations with personalized attacks?",
		Options: []string{
			"Whale phishing",
			"Spear phishing",
			"Clone phishing",
			"Blast phishing",
		},
		CorrectAnswer: 1,
		Explanation:   "Spear phishing involves targeted attacks where criminals research specific victims and craft personalized messages to appear more legitimate and increase success rates.",
	},
	{
		ID:       5,
		Question: "What should you check before clicking a link in an email?",
		Options: []string{
			"The email subject line",
			"The sender's profile picture",
			"The actual URL by hovering over the link",
			"The email's font and colors",
		},
		CorrectAnswer: 2,
		Explanation:   "Always hover over links (without clicking) to see the actual destination URL. Phishing emails often display legitimate-looking text but link to fraudulent websites.",
	},
	{
		ID:       6,
		Question: "A text message claims your package is undeliverable and includes a link to update your address. What is this called?",
		Options: []string{
			"Smishing (SMS phishing)",
			"Vishing (Voice phishing)",
			"Whaling",
			"Pharming",
		},
		CorrectAnswer: 0,
		Explanation:   "Smishing is phishing conducted through SMS text messages. These often impersonate delivery services, banks, or government agencies to trick victims into clicking malicious links.",
	},
	{
		ID:       7,
		Question: "Why should you be suspicious of emails with generic greetings like 'Dear Customer'?",
		Options: []string{
			"It's rude and unprofessional",
			"Companies always use first names in emails",
			"It suggests a mass-sent email that may be fraudulent",
			"Generic greetings are always phishing",
		},
		CorrectAnswer: 2,
		Explanation:   "While not definitive proof of phishing, generic greetings often indicate mass-sent fraudulent emails. Legitimate companies typically use your actual name from their customer database.",
	},
	{
		ID:       8,
		Question: "What is the BEST action if you receive a suspicious email claiming to be from your bank?",
		Options: []string{
			"Click the link to check if it's real",
			"Reply asking if the email is legitimate",
			"Contact your bank directly using the phone number on their official website",
			"Ignore it completely without reporting",
		},
		CorrectAnswer: 2,
		Explanation:   "Never use contact information from suspicious emails. Instead, independently verify by contacting the organization through official channels you find yourself (website, phone book, official app).",
	},
	{
		ID:       9,
		Question: "Which of these makes you LESS vulnerable to phishing attacks?",
		Options: []string{
			"Using the same password for all accounts",
			"Enabling two-factor authentication (2FA)",
			"Opening all email attachments to see what they are",
			"Clicking links to verify your identity quickly",
		},
		CorrectAnswer: 1,
		Explanation:   "Two-factor authentication adds an extra security layer. Even if phishing steals your password, attackers still can't access your account without the second factor (like a code sent to your phone).",
	},
	{
		ID:       10,
		Question: "An email offers you a free iPhone if you click a link and enter your personal information. What is this likely to be?",
		Options: []string{
			"A legitimate promotion",
			"A customer loyalty reward",
			"A phishing scam using too-good-to-be-true bait",
			"A marketing survey",
		},
		CorrectAnswer: 2,
		Explanation:   "If an offer seems too good to be true, it probably is. Free expensive items are classic phishing bait designed to entice victims into clicking malicious links or sharing personal information.",
	},
}
