package scenario

// The static banks ship with stable string ids so the judge can key
// lock-in on them; generated scenarios get uuids at parse time.

// EmailBank returns the static email scenarios.
func EmailBank() []Email {
	out := make([]Email, len(emailBank))
	copy(out, emailBank)
	return out
}

// URLBank returns the static URL scenarios.
func URLBank() []URL {
	out := make([]URL, len(urlBank))
	copy(out, urlBank)
	return out
}

// LoginPageBank returns the static login-page scenarios.
func LoginPageBank() []LoginPage {
	out := make([]LoginPage, len(loginPageBank))
	copy(out, loginPageBank)
	return out
}

var emailBank = []Email{
	{
		ID:         "email-1",
		From:       "security@paypa1-support.com",
		Subject:    "URGENT: Your Account Has Been Locked",
		Body:       "Dear Valued Customer,\n\nYour PayPal account has been locked due to suspicious activity. To unlock your account immediately, please click the link below and verify your information within 24 hours or your account will be permanently deleted.\n\nClick here to verify: http://paypa1-verify.com/login\n\nThank you,\nPayPal Security Team",
		IsPhishing: true,
		RedFlags: []string{
			"Sender domain 'paypa1-support.com' uses number '1' instead of letter 'l'",
			"Creates urgency with threats of account deletion",
			"Generic greeting 'Dear Valued Customer' instead of your name",
			"Suspicious URL with HTTP instead of HTTPS",
			"Domain 'paypa1-verify.com' is not official PayPal domain",
		},
		Explanation: "This is a classic phishing email. Legitimate companies don't threaten to delete accounts, use generic greetings, or send suspicious links. Always verify by going directly to the company's official website.",
	},
	{
		ID:          "email-2",
		From:        "it-support@yourcompany.com",
		Subject:     "Password Reset Required",
		Body:        "Hello John Smith,\n\nAs part of our routine security update, we need you to reset your password. Please use the link below to access the secure password reset portal:\n\nhttps://yourcompany.com/reset-password\n\nIf you have any questions, please contact IT Support at extension 4521.\n\nBest regards,\nIT Support Team\nYour Company Inc.",
		IsPhishing:  false,
		RedFlags:    []string{},
		Explanation: "This appears to be a legitimate email. It uses your actual name, comes from the company domain, links to the official company website with HTTPS, provides contact information, and doesn't create false urgency.",
	},
	{
		ID:         "email-3",
		From:       "no-reply@amazon-security.xyz",
		Subject:    "Confirm Your Recent Order #8729-4561",
		Body:       "Dear Customer,\n\nWe noticed an order for $899.99 was placed on your account. If you did not make this purchase, please click below to cancel:\n\nhttp://amzn-secure-cancel.xyz/order/cancel?id=8729\n\nOrder Details:\n- iPhone 14 Pro Max\n- Quantity: 1\n- Total: $899.99\n\nAmazon Customer Service",
		IsPhishing: true,
		RedFlags: []string{
			"Domain '.xyz' is suspicious for Amazon",
			"Creates urgency with fake high-value order",
			"Generic greeting without your actual name",
			"URL uses HTTP instead of HTTPS",
			"Suspicious domain 'amzn-secure-cancel.xyz' is not amazon.com",
		},
		Explanation: "This phishing email uses fear tactics about a fake purchase to get you to click. Amazon uses amazon.com domain, HTTPS links, and doesn't use '.xyz' domains. Always check orders by logging into the official website directly.",
	},
}

var urlBank = []URL{
	{
		ID:          "url-1",
		URL:         "http://g00gle.com/signin",
		DisplayText: "Google Sign In",
		IsPhishing:  true,
		Explanation: "This URL uses '00' (zeros) instead of 'oo' in 'google'. This is called typosquatting. The legitimate Google domain is 'google.com' with the letter 'o', not the number '0'.",
	},
	{
		ID:          "url-2",
		URL:         "https://login.microsoft.com/oauth2/authorize",
		DisplayText: "Microsoft Login",
		IsPhishing:  false,
		Explanation: "This is a legitimate Microsoft URL. It uses HTTPS, the correct domain 'microsoft.com', and a standard OAuth path. Always verify the exact domain spelling.",
	},
	{
		ID:          "url-3",
		URL:         "https://secure-netflix-billing.com/update-payment",
		DisplayText: "Update Netflix Payment",
		IsPhishing:  true,
		Explanation: "While this uses HTTPS, the domain 'secure-netflix-billing.com' is NOT the official Netflix domain. The real Netflix uses 'netflix.com'. Attackers can get HTTPS certificates for phishing sites too.",
	},
}

var loginPageBank = []LoginPage{
	{
		ID:                  "login-1",
		SiteName:            "PayPal",
		URL:                 "http://paypal-secure.support.com",
		HasHTTPS:            false,
		HasSuspiciousDomain: true,
		IsPhishing:          true,
		Explanation:         "This is a phishing site. It lacks HTTPS encryption and uses a fake domain 'paypal-secure.support.com'. The real PayPal is at 'paypal.com' and always uses HTTPS.",
	},
	{
		ID:                  "login-2",
		SiteName:            "Facebook",
		URL:                 "https://facebook.com/login",
		HasHTTPS:            true,
		HasSuspiciousDomain: false,
		IsPhishing:          false,
		Explanation:         "This is legitimate. It uses HTTPS, the correct domain 'facebook.com', and has no suspicious elements. Always verify these security indicators before logging in.",
	},
	{
		ID:                  "login-3",
		SiteName:            "Apple ID",
		URL:                 "https://appleid.apple.com.verify-account.net",
		HasHTTPS:            true,
		HasSuspiciousDomain: true,
		IsPhishing:          true,
		Explanation:         "Despite having HTTPS, this is a phishing site. The actual domain is 'verify-account.net', NOT 'apple.com'. The real Apple ID site is 'appleid.apple.com'. Attackers place legitimate-looking text before their fake domain.",
	},
}
