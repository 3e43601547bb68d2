package services

import (
	"time"

	"jibuCashAPI/internal/quiz"
	"jibuCashAPI/internal/task"
)

// Default datasets used to seed an empty catalog, matching what the app
// ships with. Initial tasks are time-boxed to 24 hours from assignment,
// which here means seed time.

func defaultTasks(category task.Category, now time.Time) []task.Task {
	expiry := now.Add(24 * time.Hour)

	switch category {
	case task.CategoryInitial:
		return []task.Task{
			{ID: "1", Category: category, Title: "Monetizing Social Media", Description: "Showcase strategies to earn money from platforms like Facebook, Instagram, or TikTok.", Amount: 3, ExpiresAt: &expiry},
			{ID: "2", Category: category, Title: "Affiliate Marketing Basics", Description: "Demonstrate how you can earn commissions by promoting products online.", Amount: 6, ExpiresAt: &expiry},
			{ID: "3", Category: category, Title: "Avoiding Online Scams", Description: "Highlight ways to identify and prevent financial fraud on social media.", Amount: 4, ExpiresAt: &expiry},
		}
	case task.CategoryPersonalQuizzes:
		return []task.Task{
			{ID: "1", Category: category, Title: "Social Skills", Description: "Show your ability to interact with others in different situations.", Amount: 80},
			{ID: "2", Category: category, Title: "Money Management", Description: "Demonstrate how you handle finances responsibly.", Amount: 85},
			{ID: "3", Category: category, Title: "Time Management", Description: "Showcase your efficiency in organizing and prioritizing tasks.", Amount: 90},
			{ID: "4", Category: category, Title: "Risk-Taking Ability", Description: "Express your approach to making bold or calculated decisions.", Amount: 88},
			{ID: "5", Category: category, Title: "Productivity Habits", Description: "Highlight the strategies you use to stay focused and efficient.", Amount: 87},
			{ID: "6", Category: category, Title: "Emotional Intelligence", Description: "Display your awareness and management of emotions in daily life.", Amount: 89},
			{ID: "7", Category: category, Title: "Decision-Making Skills", Description: "Prove your ability to analyze situations and make smart choices.", Amount: 86},
		}
	case task.CategoryHealthWellness:
		return []task.Task{
			{ID: "1", Category: category, Title: "Healthy Eating", Description: "Show your knowledge of nutritious foods and balanced diets.", Amount: 92},
			{ID: "2", Category: category, Title: "Fitness Routine", Description: "Share how you stay active and maintain physical fitness.", Amount: 84},
			{ID: "3", Category: category, Title: "Mental Well-Being", Description: "Demonstrate ways to manage stress and improve mental health.", Amount: 97},
			{ID: "4", Category: category, Title: "Sleep Habits", Description: "Express the importance of good sleep and how to improve sleep quality.", Amount: 81},
			{ID: "5", Category: category, Title: "Hydration & Nutrition", Description: "Highlight the benefits of drinking water and staying hydrated.", Amount: 88},
			{ID: "6", Category: category, Title: "Personal Hygiene", Description: "Show best practices for maintaining cleanliness and hygiene.", Amount: 95},
			{ID: "7", Category: category, Title: "Work-Life Balance", Description: "Discuss strategies for managing health while balancing responsibilities.", Amount: 86},
			{ID: "8", Category: category, Title: "Preventive Healthcare", Description: "Explain the importance of regular check-ups and vaccinations.", Amount: 90},
		}
	case task.CategoryGeneralKnowledge:
		return []task.Task{
			{ID: "1", Category: category, Title: "World History", Description: "Showcase your understanding of major historical events.", Amount: 83},
			{ID: "2", Category: category, Title: "Science & Innovations", Description: "Test your knowledge of groundbreaking discoveries and technologies.", Amount: 96},
			{ID: "3", Category: category, Title: "Geography & Cultures", Description: "Demonstrate awareness of global locations and diverse traditions.", Amount: 89},
			{ID: "4", Category: category, Title: "Famous Personalities", Description: "Share facts about influential figures in various fields.", Amount: 82},
			{ID: "5", Category: category, Title: "Current Affairs", Description: "Prove how well you stay updated with recent global events.", Amount: 94},
			{ID: "6", Category: category, Title: "Logical Reasoning", Description: "Solve challenges that test your critical thinking and problem-solving.", Amount: 91},
			{ID: "7", Category: category, Title: "Language & Vocabulary", Description: "Express your ability to understand and use words effectively.", Amount: 85},
			{ID: "8", Category: category, Title: "Math & Numbers", Description: "Show your numerical skills through calculations and puzzles.", Amount: 98},
		}
	case task.CategoryMoneySavings:
		return []task.Task{
			{ID: "1", Category: category, Title: "Budgeting Basics", Description: "Show how you plan and track expenses wisely.", Amount: 87},
			{ID: "2", Category: category, Title: "Smart Spending", Description: "Demonstrate your ability to make cost-effective purchasing decisions.", Amount: 93},
			{ID: "3", Category: category, Title: "Emergency Fund Planning", Description: "Explain why saving for unexpected expenses is important.", Amount: 80},
			{ID: "4", Category: category, Title: "Investment Awareness", Description: "Share knowledge about different ways to grow your money.", Amount: 99},
			{ID: "5", Category: category, Title: "Avoiding Debt", Description: "Highlight strategies to manage and minimize financial liabilities.", Amount: 88},
			{ID: "6", Category: category, Title: "Income Diversification", Description: "Discuss ways to earn money from multiple sources.", Amount: 91},
			{ID: "7", Category: category, Title: "Saving Goals", Description: "Set realistic financial targets and strategies to achieve them.", Amount: 84},
			{ID: "8", Category: category, Title: "Understanding Interest Rates", Description: "Show how interest affects loans, savings, and financial growth.", Amount: 95},
		}
	}
	return nil
}

func defaultQuizSets(category task.Category) []quiz.Set {
	if category != task.CategoryInitial {
		// only the initial tasks ship with question sets; other
		// categories are filled in remotely
		return nil
	}

	return []quiz.Set{
		{
			Category: category,
			Topic:    "Monetizing Social Media",
			Questions: []quiz.Question{
				{
					Question:      "What is one of the most common ways to earn money on Instagram?",
					Options:       []string{"Selling products through affiliate links", "Posting random pictures", "Only following celebrities"},
					CorrectAnswer: "Selling products through affiliate links",
				},
				{
					Question:      "How do influencers typically make money on TikTok?",
					Options:       []string{"By getting likes on their videos", "Through brand sponsorships and the Creator Fund", "By using TikTok filters"},
					CorrectAnswer: "Through brand sponsorships and the Creator Fund",
				},
				{
					Question:      "Which social media platform is best for selling handmade products?",
					Options:       []string{"LinkedIn", "Etsy (connected via Instagram or Facebook)", "Google Drive"},
					CorrectAnswer: "Etsy (connected via Instagram or Facebook)",
				},
				{
					Question:      "What is a key benefit of creating YouTube content for monetization?",
					Options:       []string{"One-time payments for uploading videos", "Earning ad revenue and sponsorships", "Getting free subscriptions"},
					CorrectAnswer: "Earning ad revenue and sponsorships",
				},
				{
					Question:      "What is an important step in building an audience for monetization?",
					Options:       []string{"Posting consistently and engaging with followers", "Copying content from other creators", "Buying fake followers"},
					CorrectAnswer: "Posting consistently and engaging with followers",
				},
				{
					Question:      "Which platform offers a monetization feature called 'Super Chats'?",
					Options:       []string{"Facebook", "Instagram", "YouTube"},
					CorrectAnswer: "YouTube",
				},
				{
					Question:      "What type of content performs best for monetization on social media?",
					Options:       []string{"Low-quality, random posts", "Engaging, high-value content that resonates with the audience", "Posts with excessive ads"},
					CorrectAnswer: "Engaging, high-value content that resonates with the audience",
				},
				{
					Question:      "Which factor is crucial for increasing revenue on social media?",
					Options:       []string{"Posting once a month", "Building a loyal and engaged audience", "Ignoring followers' comments"},
					CorrectAnswer: "Building a loyal and engaged audience",
				},
			},
		},
		{
			Category: category,
			Topic:    "Affiliate Marketing Basics",
			Questions: []quiz.Question{
				{
					Question:      "What is affiliate marketing?",
					Options:       []string{"Selling your own products online", "Earning commissions by promoting other people's products", "Buying products in bulk and reselling them"},
					CorrectAnswer: "Earning commissions by promoting other people's products",
				},
				{
					Question:      "Which platform is commonly used for affiliate marketing?",
					Options:       []string{"Amazon Associates", "TikTok Filters", "Google Maps"},
					CorrectAnswer: "Amazon Associates",
				},
				{
					Question:      "What do affiliates use to track their sales and commissions?",
					Options:       []string{"A unique referral link", "A random website link", "A screenshot of the product"},
					CorrectAnswer: "A unique referral link",
				},
				{
					Question:      "How are affiliate marketers typically paid?",
					Options:       []string{"A fixed salary", "Commissions based on sales made through their referral link", "A one-time payment per post"},
					CorrectAnswer: "Commissions based on sales made through their referral link",
				},
				{
					Question:      "Which type of content works best for affiliate marketing?",
					Options:       []string{"Genuine product reviews and tutorials", "Posting links without context", "Unverified product claims"},
					CorrectAnswer: "Genuine product reviews and tutorials",
				},
				{
					Question:      "What is an effective strategy for affiliate marketers to increase conversions?",
					Options:       []string{"Providing detailed product comparisons and honest reviews", "Posting random links without explanations", "Spamming affiliate links in unrelated forums"},
					CorrectAnswer: "Providing detailed product comparisons and honest reviews",
				},
				{
					Question:      "What should affiliate marketers do before promoting a product?",
					Options:       []string{"Test the product and ensure it is high quality", "Promote any product for money", "Ignore product details and just share links"},
					CorrectAnswer: "Test the product and ensure it is high quality",
				},
				{
					Question:      "Why is choosing the right niche important in affiliate marketing?",
					Options:       []string{"It helps build authority and a dedicated audience", "Any niche works as long as you post links", "Niche selection does not affect affiliate marketing success"},
					CorrectAnswer: "It helps build authority and a dedicated audience",
				},
			},
		},
		{
			Category: category,
			Topic:    "Avoiding Online Scams",
			Questions: []quiz.Question{
				{
					Question:      "What is a common sign of an online scam?",
					Options:       []string{"Unrealistic promises of high earnings with little effort", "Professional-looking websites only", "A website with a lot of images"},
					CorrectAnswer: "Unrealistic promises of high earnings with little effort",
				},
				{
					Question:      "How can you verify if an online job offer is legitimate?",
					Options:       []string{"Check company reviews and verify contact details", "Accept the offer immediately", "Ask the person who sent it if it's real"},
					CorrectAnswer: "Check company reviews and verify contact details",
				},
				{
					Question:      "What is phishing?",
					Options:       []string{"A method scammers use to steal personal information through fake emails and messages", "A way to catch fish online", "A new social media trend"},
					CorrectAnswer: "A method scammers use to steal personal information through fake emails and messages",
				},
				{
					Question:      "What is the safest way to pay for an online purchase?",
					Options:       []string{"Using a secure payment gateway like PayPal", "Sending money via an unknown mobile wallet number", "Sharing your credit card details via email"},
					CorrectAnswer: "Using a secure payment gateway like PayPal",
				},
				{
					Question:      "How can you protect yourself from online scams?",
					Options:       []string{"Avoiding sharing personal information with unknown websites", "Clicking on links from unknown emails", "Trusting every online deal you see"},
					CorrectAnswer: "Avoiding sharing personal information with unknown websites",
				},
				{
					Question:      "Which of the following is a red flag in online transactions?",
					Options:       []string{"A seller asking for payment through an unsecured method", "A website with HTTPS security", "A well-known company requesting details via official channels"},
					CorrectAnswer: "A seller asking for payment through an unsecured method",
				},
				{
					Question:      "How can you detect a fake e-commerce website?",
					Options:       []string{"Check for an SSL certificate and read customer reviews", "Trust it if it has low prices", "Avoid checking reviews and buy immediately"},
					CorrectAnswer: "Check for an SSL certificate and read customer reviews",
				},
				{
					Question:      "What should you do if you suspect an online scam?",
					Options:       []string{"Report it to relevant authorities and avoid engaging", "Ignore it and move on", "Share your details to see if it's real"},
					CorrectAnswer: "Report it to relevant authorities and avoid engaging",
				},
			},
		},
	}
}
