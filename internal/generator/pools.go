package generator

// Topic data pools backing the question archetypes. Each entry carries the
// correct answer plus distractors; option sets are unique within an entry.

type codeSnippet struct {
	Code         string
	Language     string
	Issues       []string
	CorrectIssue string
	Explanation  string
}

type errorCase struct {
	Error        string
	Context      string
	Causes       []string
	CorrectCause string
	Explanation  string
}

type requirementCase struct {
	Requirement     string
	Approaches      []string
	CorrectApproach string
	Explanation     string
}

type scenarioCase struct {
	Scenario         string
	Algorithms       []string
	CorrectAlgorithm string
	Explanation      string
}

type optimizationCase struct {
	System          string
	CurrentIssue    string
	Strategies      []string
	CorrectStrategy string
	Explanation     string
}

type situationCase struct {
	Situation       string
	Solutions       []string
	CorrectSolution string
	Explanation     string
}

type topicPool struct {
	CodeSnippets  []codeSnippet
	ErrorCases    []errorCase
	Requirements  []requirementCase
	Scenarios     []scenarioCase
	Optimizations []optimizationCase
	Situations    []situationCase
	Practices     []situationCase
}

var pools = map[string]topicPool{
	"python": {
		CodeSnippets: []codeSnippet{
			{
				Code:     "def calculate_average(numbers):\n    total = 0\n    for num in numbers:\n        total += num\n    return total / len(numbers)\n\nprint(calculate_average([1, 2, 3, 4, 5]))",
				Language: "python",
				Issues: []string{
					"Division by zero error when list is empty",
					"Incorrect variable name",
					"Missing return statement",
					"Infinite loop",
				},
				CorrectIssue: "Division by zero error when list is empty",
				Explanation:  "The function will raise a ZeroDivisionError when the input list is empty because len(numbers) would be 0.",
			},
			{
				Code:     "def fibonacci(n):\n    if n <= 1:\n        return n\n    return fibonacci(n-1) + fibonacci(n-2)\n\nprint(fibonacci(10))",
				Language: "python",
				Issues: []string{
					"Incorrect base case",
					"Inefficient recursive implementation",
					"Missing type checking",
					"Wrong mathematical formula",
				},
				CorrectIssue: "Inefficient recursive implementation",
				Explanation:  "This recursive implementation has exponential time complexity O(2^n) and will be very slow for large values of n.",
			},
		},
		ErrorCases: []errorCase{
			{
				Error:   "NameError: name 'x' is not defined",
				Context: "Python script",
				Causes: []string{
					"Variable used before declaration",
					"Typo in variable name",
					"Variable out of scope",
					"Missing import statement",
				},
				CorrectCause: "Variable used before declaration",
				Explanation:  "The variable 'x' is being referenced before it has been assigned a value.",
			},
			{
				Error:   "IndentationError: unexpected indent",
				Context: "Python module",
				Causes: []string{
					"Inconsistent whitespace at the start of a line",
					"Missing colon after a function definition",
					"Unclosed string literal",
					"Tabs configured incorrectly in the editor",
				},
				CorrectCause: "Inconsistent whitespace at the start of a line",
				Explanation:  "Python treats leading whitespace as block structure, so a line indented differently from its block raises an IndentationError.",
			},
		},
		Requirements: []requirementCase{
			{
				Requirement: "finds the largest number in a list",
				Approaches: []string{
					"Use max() built-in function",
					"Sort the list and take the last element",
					"Use a loop to compare each element",
					"Use reduce() with a lambda function",
				},
				CorrectApproach: "Use max() built-in function",
				Explanation:     "The max() function is the most efficient and readable way to find the largest number in a list.",
			},
		},
	},
	"javascript": {
		CodeSnippets: []codeSnippet{
			{
				Code:     "function getUserData(userId) {\n    fetch(`/api/users/${userId}`)\n        .then(response => response.json())\n        .then(data => console.log(data));\n}",
				Language: "javascript",
				Issues: []string{
					"Missing error handling",
					"No return statement",
					"Incorrect API endpoint",
					"Missing authentication",
				},
				CorrectIssue: "No return statement",
				Explanation:  "The function doesn't return the fetched data, making it impossible to use the result outside the function.",
			},
		},
		ErrorCases: []errorCase{
			{
				Error:   "TypeError: Cannot read property 'length' of undefined",
				Context: "JavaScript web application",
				Causes: []string{
					"Trying to access property of undefined variable",
					"Missing null check",
					"Incorrect object structure",
					"Timing issue with async operations",
				},
				CorrectCause: "Trying to access property of undefined variable",
				Explanation:  "The code is trying to access the 'length' property of a variable that is undefined.",
			},
		},
		Requirements: []requirementCase{
			{
				Requirement: "removes duplicate values from an array",
				Approaches: []string{
					"Spread the array into a Set and back",
					"Nested loops comparing every pair",
					"Sort the array and splice adjacent duplicates",
					"Track seen values in a string",
				},
				CorrectApproach: "Spread the array into a Set and back",
				Explanation:     "A Set keeps only unique values, so [...new Set(arr)] deduplicates in linear time with one expression.",
			},
		},
	},
	"dataStructures": {
		Scenarios: []scenarioCase{
			{
				Scenario: "You need to store and retrieve student records where you frequently search by student ID",
				Algorithms: []string{
					"Hash table (dictionary)",
					"Binary search tree",
					"Linked list",
					"Array with linear search",
				},
				CorrectAlgorithm: "Hash table (dictionary)",
				Explanation:      "Hash tables provide O(1) average-case lookup time, making them ideal for frequent searches by key.",
			},
			{
				Scenario: "You must process tasks strictly in the order they arrive while producers keep adding new ones",
				Algorithms: []string{
					"Queue (FIFO)",
					"Stack (LIFO)",
					"Max-heap",
					"Sorted array",
				},
				CorrectAlgorithm: "Queue (FIFO)",
				Explanation:      "A queue preserves arrival order with O(1) enqueue and dequeue, exactly matching first-in first-out processing.",
			},
		},
		Optimizations: []optimizationCase{
			{
				System:       "web application",
				CurrentIssue: "O(n) search time in a large user database",
				Strategies: []string{
					"Implement database indexing",
					"Use caching with Redis",
					"Add more server memory",
					"Reduce the number of users",
				},
				CorrectStrategy: "Implement database indexing",
				Explanation:     "Database indexing creates a data structure that allows for faster data retrieval, reducing search time from O(n) to O(log n).",
			},
		},
	},
	"webDevelopment": {
		Situations: []situationCase{
			{
				Situation: "a user reports that the website loads slowly on mobile devices",
				Solutions: []string{
					"Implement responsive images and lazy loading",
					"Add more server resources",
					"Remove all images from the site",
					"Ask users to use desktop only",
				},
				CorrectSolution: "Implement responsive images and lazy loading",
				Explanation:     "Responsive images and lazy loading are proven techniques to improve mobile performance without sacrificing functionality.",
			},
			{
				Situation: "an API consumed by the frontend starts returning intermittent 500 errors",
				Solutions: []string{
					"Add retry with backoff and surface a graceful error state",
					"Hide the feature until someone notices",
					"Poll the API in a tight loop until it succeeds",
					"Cache the last error and show it forever",
				},
				CorrectSolution: "Add retry with backoff and surface a graceful error state",
				Explanation:     "Bounded retries with backoff absorb transient failures, and a graceful error state keeps the UI usable while the backend recovers.",
			},
		},
	},
	"softwareEngineering": {
		Practices: []situationCase{
			{
				Situation: "working on a team project where multiple developers are modifying the same code files",
				Solutions: []string{
					"Use version control with proper branching strategy",
					"Work on different files only",
					"Coordinate through email",
					"Work during different hours",
				},
				CorrectSolution: "Use version control with proper branching strategy",
				Explanation:     "Version control systems like Git with branching strategies prevent conflicts and enable collaborative development.",
			},
		},
	},
}

// poolFor resolves a topic to its data pool, defaulting to python the way
// the exam authoring flow always has.
func poolFor(topic string) topicPool {
	if pool, ok := pools[topic]; ok {
		return pool
	}
	return pools["python"]
}
