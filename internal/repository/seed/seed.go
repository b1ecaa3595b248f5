// Package seed holds the fixed default catalogs used to initialise an empty
// store. Both persistence backends seed from here, so a fresh deployment on
// either backend serves the same data.
package seed

import "github.com/Saurabh6266/Python-Learning-Platform/internal/model"

// Resources returns the default curated learning catalog.
func Resources() []model.Resource {
	return []model.Resource{
		// Beginner
		{ID: "b1", Title: "Official Python Documentation - Getting Started", Type: "Documentation", Description: "The official Python documentation's beginner guide", URL: "https://docs.python.org/3/tutorial/index.html", Level: model.Beginner, Tags: []string{"syntax", "basics", "installation"}},
		{ID: "b2", Title: "Python for Everybody (py4e)", Type: "Free Course", Description: "A complete beginner-friendly Python course by Dr. Charles Severance", URL: "https://www.py4e.com/", Level: model.Beginner, Tags: []string{"basics", "programming", "fundamentals"}},
		{ID: "b3", Title: "W3Schools Python Tutorial", Type: "Tutorial", Description: "Interactive Python tutorial with exercises and examples", URL: "https://www.w3schools.com/python/", Level: model.Beginner, Tags: []string{"syntax", "examples", "interactive"}},
		{ID: "b4", Title: "Automate the Boring Stuff with Python", Type: "Free Book", Description: "Practical programming for total beginners by Al Sweigart", URL: "https://automatetheboringstuff.com/", Level: model.Beginner, Tags: []string{"automation", "practical", "scripts"}},
		{ID: "b5", Title: "Real Python - Python Basics", Type: "Tutorial", Description: "Python basics with practical examples and explanations", URL: "https://realpython.com/python-basics/", Level: model.Beginner, Tags: []string{"basics", "examples", "fundamentals"}},
		{ID: "b6", Title: "Codecademy - Learn Python", Type: "Interactive Course", Description: "Interactive Python course with coding exercises", URL: "https://www.codecademy.com/learn/learn-python-3", Level: model.Beginner, Tags: []string{"interactive", "basics", "syntax"}},
		{ID: "b7", Title: "freeCodeCamp - Python Beginner Course", Type: "Video Course", Description: "Full Python course for beginners on YouTube", URL: "https://www.youtube.com/watch?v=rfscVS0vtbw", Level: model.Beginner, Tags: []string{"video", "comprehensive", "tutorial"}},
		{ID: "b8", Title: "Programiz Python Tutorial", Type: "Tutorial", Description: "Step by step Python tutorial with examples", URL: "https://www.programiz.com/python-programming", Level: model.Beginner, Tags: []string{"tutorial", "examples", "basics"}},

		// Intermediate
		{ID: "i1", Title: "Python Design Patterns", Type: "Tutorial", Description: "Implementation of design patterns in Python", URL: "https://refactoring.guru/design-patterns/python", Level: model.Intermediate, Tags: []string{"design patterns", "OOP", "architecture"}},
		{ID: "i2", Title: "Intermediate Python", Type: "Free Book", Description: "A free book for intermediate Python programmers", URL: "https://book.pythontips.com/en/latest/", Level: model.Intermediate, Tags: []string{"advanced concepts", "tips", "tricks"}},
		{ID: "i3", Title: "Fluent Python", Type: "Book Excerpts", Description: "Clear, concise, and effective programming with Python", URL: "https://github.com/fluentpython", Level: model.Intermediate, Tags: []string{"idiomatic", "effective", "pythonic"}},
		{ID: "i4", Title: "Real Python - Intermediate Topics", Type: "Tutorial Collection", Description: "A collection of intermediate-level Python tutorials", URL: "https://realpython.com/tutorials/intermediate/", Level: model.Intermediate, Tags: []string{"diverse topics", "practical", "tutorials"}},
		{ID: "i5", Title: "Python Testing with pytest", Type: "Tutorial", Description: "Learn about testing Python applications with pytest", URL: "https://realpython.com/pytest-python-testing/", Level: model.Intermediate, Tags: []string{"testing", "pytest", "quality"}},
		{ID: "i6", Title: "Python Tricks: The Book", Type: "Book Samples", Description: "A buffet of awesome Python features and tricks", URL: "https://realpython.com/products/python-tricks-book/", Level: model.Intermediate, Tags: []string{"tricks", "features", "techniques"}},
		{ID: "i7", Title: "Python Data Science Handbook", Type: "Free Book", Description: "Python data science libraries and techniques", URL: "https://jakevdp.github.io/PythonDataScienceHandbook/", Level: model.Intermediate, Tags: []string{"data science", "numpy", "pandas", "matplotlib"}},
		{ID: "i8", Title: "Python Concurrency", Type: "Tutorial", Description: "Understanding concurrency in Python with threading, multiprocessing, and asyncio", URL: "https://realpython.com/python-concurrency/", Level: model.Intermediate, Tags: []string{"concurrency", "threading", "asyncio"}},

		// Advanced
		{ID: "a1", Title: "Python 3 Module of the Week", Type: "Documentation", Description: "Deep dive into Python's standard library modules", URL: "https://pymotw.com/3/", Level: model.Advanced, Tags: []string{"standard library", "modules", "reference"}},
		{ID: "a2", Title: "Python Cookbook", Type: "Book Excerpts", Description: "Recipes for mastering Python 3", URL: "https://github.com/dabeaz/python-cookbook", Level: model.Advanced, Tags: []string{"recipes", "techniques", "advanced patterns"}},
		{ID: "a3", Title: "CPython Internals", Type: "Tutorial", Description: "Understanding the internals of CPython", URL: "https://realpython.com/cpython-source-code-guide/", Level: model.Advanced, Tags: []string{"cpython", "internals", "c-api"}},
		{ID: "a4", Title: "Full Stack Python", Type: "Documentation", Description: "Full stack Python web development", URL: "https://www.fullstackpython.com/", Level: model.Advanced, Tags: []string{"web development", "deployment", "frameworks"}},
		{ID: "a5", Title: "Python Decorators", Type: "Tutorial", Description: "Deep dive into Python decorators", URL: "https://realpython.com/primer-on-python-decorators/", Level: model.Advanced, Tags: []string{"decorators", "metaprogramming", "functions"}},
		{ID: "a6", Title: "Building Machine Learning Systems with Python", Type: "Tutorial Series", Description: "Advanced machine learning with Python", URL: "https://github.com/luispedro/BuildingMachineLearningSystemsWithPython", Level: model.Advanced, Tags: []string{"machine learning", "algorithms", "data science"}},
		{ID: "a7", Title: "Python Performance Optimization", Type: "Tutorial", Description: "Advanced techniques for optimizing Python code", URL: "https://pythonspeed.com/", Level: model.Advanced, Tags: []string{"performance", "optimization", "profiling"}},
		{ID: "a8", Title: "Making Python Programs Blazingly Fast", Type: "Video", Description: "Advanced techniques for high-performance Python", URL: "https://www.youtube.com/watch?v=o9wePFI0XkE", Level: model.Advanced, Tags: []string{"optimization", "performance", "cython"}},
	}
}

// Projects returns the default practice-project catalog.
func Projects() []model.Project {
	return []model.Project{
		{
			ID: "pb1", Title: "Number Guessing Game",
			Description: "Create a simple number guessing game where the computer generates a random number and the user tries to guess it.",
			Level:       model.Beginner, Difficulty: 1,
			Skills:  []string{"Basic syntax", "Input/Output", "Random module", "Conditionals"},
			Details: "Build a console-based number guessing game where the program generates a random number between 1 and 100. The player gets feedback after each guess whether their guess was too high or too low, until they correctly guess the number.",
			StarterCode: `import random

# Generate a random number between 1 and 100
target_number = random.randint(1, 100)
attempts = 0

print("Welcome to the Number Guessing Game!")
print("I'm thinking of a number between 1 and 100.")

# Your code here
# Hint: Use a while loop to keep asking for guesses
`,
		},
		{
			ID: "pb2", Title: "To-Do List Application",
			Description: "Build a simple command-line to-do list where users can add, view, and delete tasks.",
			Level:       model.Beginner, Difficulty: 2,
			Skills:  []string{"Lists", "Functions", "File I/O", "User input"},
			Details: "Create a command-line application that allows users to manage their to-do list. Implement functions to add tasks, view all tasks, mark tasks as completed, delete tasks, and save the tasks to a file for persistence.",
		},
		{
			ID: "pb3", Title: "Simple Calculator",
			Description: "Create a basic calculator that can perform addition, subtraction, multiplication, and division.",
			Level:       model.Beginner, Difficulty: 1,
			Skills:  []string{"Functions", "User input", "Conditionals", "Error handling"},
			Details: "Build a calculator that takes two numbers and an operator from the user and prints the result. Handle division by zero and invalid input gracefully.",
		},
		{
			ID: "pb4", Title: "Password Generator",
			Description: "Create a program that generates random passwords with varying complexity.",
			Level:       model.Beginner, Difficulty: 2,
			Skills:  []string{"Random module", "Strings", "Functions", "User input"},
			Details: "Let the user choose the password length and whether to include digits and symbols, then generate a random password satisfying those constraints.",
		},
		{
			ID: "pi1", Title: "Weather App",
			Description: "Build a command-line application that fetches and displays weather data for a given location.",
			Level:       model.Intermediate, Difficulty: 3,
			Skills:  []string{"APIs", "JSON", "Error handling", "Data formatting"},
			Details: "Use a public weather API to fetch current conditions for a city supplied by the user, parse the JSON response, and display a readable summary. Handle network failures and unknown cities.",
		},
		{
			ID: "pi2", Title: "Web Scraper",
			Description: "Build a web scraper that extracts specific information from websites.",
			Level:       model.Intermediate, Difficulty: 3,
			Skills:  []string{"Web scraping", "BeautifulSoup/Requests", "HTML/CSS basics", "Data extraction"},
			Details: "Pick a site with structured listings and scrape titles, links, and metadata into a CSV file. Respect robots.txt and add a delay between requests.",
		},
		{
			ID: "pi3", Title: "Personal Finance Tracker",
			Description: "Create an application to track personal expenses and income.",
			Level:       model.Intermediate, Difficulty: 3,
			Skills:  []string{"File I/O", "Data structures", "Data visualization", "OOP"},
			Details: "Record transactions with categories and dates, persist them to disk, and report monthly totals per category with a simple chart.",
		},
		{
			ID: "pi4", Title: "URL Shortener",
			Description: "Create a URL shortening service like bit.ly.",
			Level:       model.Intermediate, Difficulty: 4,
			Skills:  []string{"Web development", "Databases", "Flask/Django", "Unique ID generation"},
			Details: "Build a small web service that stores long URLs under generated short codes and redirects visitors. Persist mappings in a database and guard against collisions.",
		},
		{
			ID: "pa1", Title: "Machine Learning Image Classifier",
			Description: "Build an image classification system using machine learning.",
			Level:       model.Advanced, Difficulty: 5,
			Skills:  []string{"Machine learning", "TensorFlow/PyTorch", "Neural networks", "Image processing"},
			Details: "Train a convolutional network on a labelled image dataset, evaluate accuracy on a held-out set, and expose a small CLI for classifying new images.",
		},
		{
			ID: "pa2", Title: "Natural Language Processing Chatbot",
			Description: "Build a chatbot that can understand and respond to natural language inputs.",
			Level:       model.Advanced, Difficulty: 5,
			Skills:  []string{"NLP", "NLTK/spaCy", "Text processing", "Dialog management"},
			Details: "Implement intent recognition over user messages and a dialog manager that keeps conversation state across turns.",
		},
		{
			ID: "pa3", Title: "Web Application with Django",
			Description: "Build a full-featured web application using Django.",
			Level:       model.Advanced, Difficulty: 4,
			Skills:  []string{"Django", "Databases", "Web development", "Authentication"},
			Details: "Design models, views, and templates for a multi-user application with registration, per-user data, and an admin interface.",
		},
		{
			ID: "pa4", Title: "Data Analysis and Visualization Dashboard",
			Description: "Create a dashboard for analyzing and visualizing datasets.",
			Level:       model.Advanced, Difficulty: 4,
			Skills:  []string{"Data analysis", "Pandas", "Matplotlib/Plotly", "Dashboard design"},
			Details: "Load a public dataset, compute summary statistics, and present interactive charts with filtering by time range and category.",
		},
	}
}

// PracticeProblems returns the default problem catalog for both platforms.
func PracticeProblems() []model.PracticeProblem {
	return []model.PracticeProblem{
		{ID: "lc1", Title: "Two Sum", Difficulty: "Easy", Description: "Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.", URL: "https://leetcode.com/problems/two-sum/", Platform: model.PlatformLeetCode, Tags: []string{"Array", "Hash Table"}},
		{ID: "lc2", Title: "Add Two Numbers", Difficulty: "Medium", Description: "You are given two non-empty linked lists representing two non-negative integers. Add the two numbers and return the sum as a linked list.", URL: "https://leetcode.com/problems/add-two-numbers/", Platform: model.PlatformLeetCode, Tags: []string{"Linked List", "Math", "Recursion"}},
		{ID: "lc3", Title: "Longest Substring Without Repeating Characters", Difficulty: "Medium", Description: "Given a string s, find the length of the longest substring without repeating characters.", URL: "https://leetcode.com/problems/longest-substring-without-repeating-characters/", Platform: model.PlatformLeetCode, Tags: []string{"Hash Table", "String", "Sliding Window"}},
		{ID: "lc4", Title: "Median of Two Sorted Arrays", Difficulty: "Hard", Description: "Given two sorted arrays nums1 and nums2 of size m and n respectively, return the median of the two sorted arrays.", URL: "https://leetcode.com/problems/median-of-two-sorted-arrays/", Platform: model.PlatformLeetCode, Tags: []string{"Array", "Binary Search", "Divide and Conquer"}},
		{ID: "lc5", Title: "Longest Palindromic Substring", Difficulty: "Medium", Description: "Given a string s, return the longest palindromic substring in s.", URL: "https://leetcode.com/problems/longest-palindromic-substring/", Platform: model.PlatformLeetCode, Tags: []string{"String", "Dynamic Programming"}},
		{ID: "lc6", Title: "Valid Parentheses", Difficulty: "Easy", Description: "Given a string s containing just the characters '(', ')', '{', '}', '[' and ']', determine if the input string is valid.", URL: "https://leetcode.com/problems/valid-parentheses/", Platform: model.PlatformLeetCode, Tags: []string{"String", "Stack"}},
		{ID: "lc7", Title: "Remove Duplicates from Sorted Array", Difficulty: "Easy", Description: "Given an integer array nums sorted in non-decreasing order, remove the duplicates in-place such that each unique element appears only once.", URL: "https://leetcode.com/problems/remove-duplicates-from-sorted-array/", Platform: model.PlatformLeetCode, Tags: []string{"Array", "Two Pointers"}},
		{ID: "lc8", Title: "Merge Two Sorted Lists", Difficulty: "Easy", Description: "You are given the heads of two sorted linked lists list1 and list2. Merge the two lists in a one sorted list.", URL: "https://leetcode.com/problems/merge-two-sorted-lists/", Platform: model.PlatformLeetCode, Tags: []string{"Linked List", "Recursion"}},
		{ID: "lc9", Title: "Binary Tree Level Order Traversal", Difficulty: "Medium", Description: "Given the root of a binary tree, return the level order traversal of its nodes' values.", URL: "https://leetcode.com/problems/binary-tree-level-order-traversal/", Platform: model.PlatformLeetCode, Tags: []string{"Tree", "BFS", "Binary Tree"}},
		{ID: "lc10", Title: "Word Search", Difficulty: "Medium", Description: "Given an m x n grid of characters board and a string word, return true if word exists in the grid.", URL: "https://leetcode.com/problems/word-search/", Platform: model.PlatformLeetCode, Tags: []string{"Array", "Backtracking", "Matrix"}},
		{ID: "lc11", Title: "Trapping Rain Water", Difficulty: "Hard", Description: "Given n non-negative integers representing an elevation map where the width of each bar is 1, compute how much water it can trap after raining.", URL: "https://leetcode.com/problems/trapping-rain-water/", Platform: model.PlatformLeetCode, Tags: []string{"Array", "Two Pointers", "Dynamic Programming", "Stack"}},
		{ID: "lc12", Title: "Merge k Sorted Lists", Difficulty: "Hard", Description: "You are given an array of k linked-lists lists, each linked-list is sorted in ascending order. Merge all the linked-lists into one sorted linked-list.", URL: "https://leetcode.com/problems/merge-k-sorted-lists/", Platform: model.PlatformLeetCode, Tags: []string{"Linked List", "Divide and Conquer", "Heap"}},

		{ID: "hr1", Title: "Solve Me First", Difficulty: "Easy", Description: "Complete the function solveMeFirst to compute the sum of two integers.", URL: "https://www.hackerrank.com/challenges/solve-me-first/problem", Platform: model.PlatformHackerRank, Tags: []string{"Introduction"}},
		{ID: "hr2", Title: "Simple Array Sum", Difficulty: "Easy", Description: "Given an array of integers, find the sum of its elements.", URL: "https://www.hackerrank.com/challenges/simple-array-sum/problem", Platform: model.PlatformHackerRank, Tags: []string{"Arrays"}},
		{ID: "hr3", Title: "Compare the Triplets", Difficulty: "Easy", Description: "Compare the ratings of two challenge submissions triplet by triplet.", URL: "https://www.hackerrank.com/challenges/compare-the-triplets/problem", Platform: model.PlatformHackerRank, Tags: []string{"Implementation"}},
		{ID: "hr4", Title: "A Very Big Sum", Difficulty: "Easy", Description: "Calculate and print the sum of the elements in an array, keeping in mind that some of those integers may be quite large.", URL: "https://www.hackerrank.com/challenges/a-very-big-sum/problem", Platform: model.PlatformHackerRank, Tags: []string{"Arrays", "Math"}},
		{ID: "hr5", Title: "Diagonal Difference", Difficulty: "Easy", Description: "Given a square matrix, calculate the absolute difference between the sums of its diagonals.", URL: "https://www.hackerrank.com/challenges/diagonal-difference/problem", Platform: model.PlatformHackerRank, Tags: []string{"Arrays", "Math"}},
		{ID: "hr6", Title: "Birthday Cake Candles", Difficulty: "Easy", Description: "Count how many candles are the tallest on a birthday cake.", URL: "https://www.hackerrank.com/challenges/birthday-cake-candles/problem", Platform: model.PlatformHackerRank, Tags: []string{"Arrays", "Math"}},
		{ID: "hr7", Title: "Matrix Layer Rotation", Difficulty: "Hard", Description: "Rotate the matrix r times in an anti-clockwise direction and print the resulting matrix.", URL: "https://www.hackerrank.com/challenges/matrix-rotation-algo/problem", Platform: model.PlatformHackerRank, Tags: []string{"Implementation", "Arrays"}},
		{ID: "hr8", Title: "The Time in Words", Difficulty: "Medium", Description: "Given the time in numerals, convert it into words.", URL: "https://www.hackerrank.com/challenges/the-time-in-words/problem", Platform: model.PlatformHackerRank, Tags: []string{"Implementation", "Strings"}},
		{ID: "hr9", Title: "Forming a Magic Square", Difficulty: "Medium", Description: "Convert a 3x3 matrix into a magic square at a minimal cost.", URL: "https://www.hackerrank.com/challenges/magic-square-forming/problem", Platform: model.PlatformHackerRank, Tags: []string{"Implementation", "Backtracking"}},
		{ID: "hr10", Title: "Journey to the Moon", Difficulty: "Medium", Description: "Determine how many pairs of astronauts from different countries can be chosen.", URL: "https://www.hackerrank.com/challenges/journey-to-the-moon/problem", Platform: model.PlatformHackerRank, Tags: []string{"Graph Theory", "DFS"}},
		{ID: "hr11", Title: "Sherlock and the Valid String", Difficulty: "Medium", Description: "Determine whether a string is valid: all characters appear the same number of times, or one removal makes it so.", URL: "https://www.hackerrank.com/challenges/sherlock-and-valid-string/problem", Platform: model.PlatformHackerRank, Tags: []string{"String", "Hash Tables"}},
		{ID: "hr12", Title: "The Bomberman Game", Difficulty: "Medium", Description: "Simulate the Bomberman game grid over n seconds and print the final state.", URL: "https://www.hackerrank.com/challenges/bomber-man/problem", Platform: model.PlatformHackerRank, Tags: []string{"Implementation", "Simulation"}},
	}
}
