package corpus

// Name pools per language. Accented names are romanized on load.

var englishPool = pool{
	male: []string{
		"James", "Oliver", "Harry", "George", "Jack", "Thomas", "William", "Charlie",
		"Samuel", "Daniel", "Joseph", "Henry", "Edward", "Alexander", "Benjamin", "Lucas",
	},
	female: []string{
		"Olivia", "Amelia", "Isla", "Emily", "Sophie", "Grace", "Charlotte", "Lucy",
		"Hannah", "Ella", "Jessica", "Chloe", "Eleanor", "Alice", "Rebecca", "Ruby",
	},
	last: []string{
		"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson", "Johnson", "Davies",
		"Robinson", "Wright", "Thompson", "Evans", "Walker", "White", "Roberts", "Green",
	},
}

var indianPool = pool{
	male: []string{
		"Aarav", "Vivaan", "Aditya", "Arjun", "Rohan", "Rahul", "Vikram", "Sanjay",
		"Karthik", "Ishaan", "Siddharth", "Pranav", "Anand", "Nikhil", "Rajesh", "Varun",
	},
	female: []string{
		"Aanya", "Diya", "Priya", "Ananya", "Kavya", "Meera", "Pooja", "Shreya",
		"Neha", "Lakshmi", "Isha", "Riya", "Sneha", "Divya", "Anjali", "Nisha",
	},
	last: []string{
		"Sharma", "Patel", "Singh", "Kumar", "Gupta", "Reddy", "Iyer", "Nair",
		"Mehta", "Joshi", "Rao", "Bose", "Chopra", "Desai", "Kapoor", "Malhotra",
	},
}

var germanPool = pool{
	male: []string{
		"Lukas", "Jonas", "Leon", "Felix", "Maximilian", "Paul", "Tim", "Jan",
		"Niklas", "Florian", "Tobias", "Stefan", "Matthias", "Sebastian", "Jürgen", "Uwe",
	},
	female: []string{
		"Anna", "Lena", "Leonie", "Hannah", "Lea", "Laura", "Julia", "Katharina",
		"Sabine", "Petra", "Johanna", "Charlotte", "Marie", "Jana", "Sophie", "Katrin",
	},
	last: []string{
		"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker",
		"Schulz", "Hoffmann", "Schäfer", "Koch", "Bauer", "Richter", "Klein", "Wolf",
	},
}

var frenchPool = pool{
	male: []string{
		"Jean", "Pierre", "Louis", "Hugo", "Lucas", "Théo", "Mathis", "Nathan",
		"Antoine", "Julien", "Nicolas", "Étienne", "François", "Jean-Luc", "Rémi", "Gaël",
	},
	female: []string{
		"Marie", "Camille", "Léa", "Chloé", "Manon", "Inès", "Juliette", "Louise",
		"Amélie", "Céline", "Élodie", "Margaux", "Hélène", "Claire", "Anaïs", "Zoé",
	},
	last: []string{
		"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Petit", "Durand",
		"Leroy", "Moreau", "Simon", "Laurent", "Lefèvre", "Michel", "Garcia", "Fontaine",
	},
}

var spanishPool = pool{
	male: []string{
		"Alejandro", "Pablo", "Daniel", "Javier", "Carlos", "Miguel", "José", "Sergio",
		"Jorge", "Andrés", "Diego", "Álvaro", "Raúl", "Hugo", "Adrián", "Iván",
	},
	female: []string{
		"Lucía", "María", "Sofía", "Martina", "Paula", "Carmen", "Elena", "Laura",
		"Valentina", "Isabel", "Ana", "Julia", "Marta", "Inés", "Claudia", "Rocío",
	},
	last: []string{
		"García", "Fernández", "González", "Rodríguez", "López", "Martínez", "Sánchez", "Pérez",
		"Gómez", "Martín", "Jiménez", "Ruiz", "Hernández", "Díaz", "Moreno", "Álvarez",
	},
}

var italianPool = pool{
	male: []string{
		"Francesco", "Alessandro", "Lorenzo", "Matteo", "Leonardo", "Andrea", "Gabriele", "Marco",
		"Riccardo", "Tommaso", "Giuseppe", "Luca", "Niccolò", "Davide", "Stefano", "Giovanni",
	},
	female: []string{
		"Sofia", "Giulia", "Aurora", "Alice", "Ginevra", "Emma", "Giorgia", "Beatrice",
		"Chiara", "Francesca", "Martina", "Elisa", "Federica", "Valentina", "Sara", "Ilaria",
	},
	last: []string{
		"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci",
		"Marino", "Greco", "Bruno", "Gallo", "Conti", "Mancini", "Costa", "Giordano",
	},
}

var dutchPool = pool{
	male: []string{
		"Daan", "Sem", "Lucas", "Levi", "Finn", "Bram", "Thijs", "Jesse",
		"Ruben", "Sander", "Pieter", "Joost", "Maarten", "Wouter", "Niels", "Stijn",
	},
	female: []string{
		"Emma", "Julia", "Sophie", "Tess", "Fenna", "Anouk", "Lotte", "Sanne",
		"Femke", "Eva", "Iris", "Noor", "Lieke", "Maud", "Roos", "Floor",
	},
	last: []string{
		"Jansen", "Bakker", "Visser", "Smit", "Meijer", "Mulder", "Bos", "Vos",
		"Peters", "Hendriks", "Dekker", "Brouwer", "Dijkstra", "Smits", "Kok", "Willems",
	},
}

var portuguesePool = pool{
	male: []string{
		"João", "Pedro", "Lucas", "Gabriel", "Rafael", "Miguel", "Tiago", "Gonçalo",
		"Rodrigo", "Diogo", "Bruno", "André", "Felipe", "Matheus", "Gustavo", "Vinícius",
	},
	female: []string{
		"Ana", "Beatriz", "Mariana", "Inês", "Carolina", "Leonor", "Larissa", "Camila",
		"Juliana", "Fernanda", "Letícia", "Gabriela", "Luísa", "Rita", "Sofia", "Joana",
	},
	last: []string{
		"Silva", "Santos", "Ferreira", "Pereira", "Oliveira", "Costa", "Rodrigues", "Martins",
		"Sousa", "Fernandes", "Gonçalves", "Gomes", "Lopes", "Almeida", "Ribeiro", "Carvalho",
	},
}

var chinesePool = pool{
	male: []string{
		"Wei", "Hao", "Jun", "Lei", "Tao", "Jie", "Qiang", "Ming",
		"Yang", "Bo", "Chen", "Xiaoming", "Zhiwei", "Haoran", "Yuxuan", "Zihao",
	},
	female: []string{
		"Fang", "Jing", "Li", "Min", "Na", "Xiu", "Yan", "Ying",
		"Xiaoyu", "Meilin", "Yutong", "Xinyi", "Shuang", "Lan", "Hui", "Ting",
	},
	last: []string{
		"Wang", "Li", "Zhang", "Liu", "Chen", "Yang", "Huang", "Zhao",
		"Wu", "Zhou", "Xu", "Sun", "Ma", "Zhu", "Hu", "Guo",
	},
}

var cantonesePool = pool{
	male: []string{
		"Ka-Ho", "Chi-Wai", "Wing-Kit", "Man-Lok", "Tsz-Hin", "Ho-Yin", "Kin-Wah", "Siu-Ming",
	},
	female: []string{
		"Ka-Yan", "Wing-Sze", "Mei-Ling", "Hoi-Yan", "Tsz-Ching", "Wai-Man", "Suet-Ying", "Pui-Shan",
	},
	last: []string{
		"Chan", "Wong", "Leung", "Cheung", "Lau", "Lee", "Ho", "Ng", "Chow", "Tsang", "Yip", "Lam",
	},
}

var japanesePool = pool{
	male: []string{
		"Haruto", "Ren", "Sota", "Yuto", "Hiroshi", "Takeshi", "Kenji", "Daiki",
		"Kaito", "Riku", "Yuki", "Shota", "Takumi", "Kazuki", "Naoki", "Ryota",
	},
	female: []string{
		"Yui", "Sakura", "Hina", "Aoi", "Yuna", "Mei", "Akari", "Haruka",
		"Misaki", "Nanami", "Ayaka", "Emi", "Kaori", "Yoko", "Miyu", "Rin",
	},
	last: []string{
		"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito", "Yamamoto", "Nakamura",
		"Kobayashi", "Kato", "Yoshida", "Yamada", "Sasaki", "Matsumoto", "Inoue", "Kimura",
	},
}

var koreanPool = pool{
	male: []string{
		"Minjun", "Seojun", "Doyun", "Jiho", "Hajun", "Junwoo", "Hyunwoo", "Jihun",
		"Sungmin", "Taeyang", "Donghyun", "Jaewon",
	},
	female: []string{
		"Seoyeon", "Jiwoo", "Haeun", "Minseo", "Jiyoon", "Soyeon", "Yuna", "Eunji",
		"Hyejin", "Sujin", "Dahye", "Yerin",
	},
	last: []string{
		"Kim", "Lee", "Park", "Choi", "Jung", "Kang", "Cho", "Yoon", "Jang", "Lim", "Han", "Shin",
	},
}

var polishPool = pool{
	male: []string{
		"Jakub", "Jan", "Szymon", "Filip", "Kacper", "Mateusz", "Piotr", "Tomasz",
		"Krzysztof", "Andrzej", "Marcin", "Pawel", "Michal", "Kamil", "Adrian", "Dawid",
	},
	female: []string{
		"Zuzanna", "Julia", "Maja", "Zofia", "Hanna", "Lena", "Anna", "Katarzyna",
		"Agnieszka", "Magdalena", "Joanna", "Natalia", "Aleksandra", "Ewa", "Monika", "Karolina",
	},
	last: []string{
		"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński", "Lewandowski", "Zieliński",
		"Szymański", "Woźniak", "Dąbrowski", "Kozłowski", "Jankowski", "Mazur", "Kwiatkowski", "Krawczyk",
	},
}

var swedishPool = pool{
	male: []string{
		"Erik", "Lars", "Karl", "Anders", "Johan", "Per", "Nils", "Oskar",
		"Axel", "Gustav", "Magnus", "Henrik", "Emil", "Viktor", "Anton", "Linus",
	},
	female: []string{
		"Anna", "Eva", "Maria", "Karin", "Sara", "Elin", "Ebba", "Astrid",
		"Ingrid", "Linnea", "Frida", "Maja", "Saga", "Alva", "Klara", "Elsa",
	},
	last: []string{
		"Andersson", "Johansson", "Karlsson", "Nilsson", "Eriksson", "Larsson", "Olsson", "Persson",
		"Svensson", "Gustafsson", "Pettersson", "Jonsson", "Lindberg", "Lindström", "Bergström", "Åberg",
	},
}

var russianPool = pool{
	male: []string{
		"Aleksandr", "Dmitri", "Ivan", "Sergei", "Mikhail", "Nikolai", "Andrei", "Alexei",
		"Vladimir", "Pavel", "Yuri", "Artem", "Maxim", "Kirill", "Oleg", "Roman",
	},
	female: []string{
		"Anastasia", "Maria", "Anna", "Olga", "Tatiana", "Natalia", "Elena", "Irina",
		"Svetlana", "Ekaterina", "Daria", "Polina", "Sofia", "Yulia", "Ksenia", "Vera",
	},
	last: []string{
		"Ivanov", "Smirnov", "Kuznetsov", "Popov", "Vasiliev", "Petrov", "Sokolov", "Mikhailov",
		"Novikov", "Fedorov", "Morozov", "Volkov", "Alekseev", "Lebedev", "Semenov", "Egorov",
	},
}

var turkishPool = pool{
	male: []string{
		"Mehmet", "Mustafa", "Ahmet", "Ali", "Hüseyin", "Hasan", "Emre", "Burak",
		"Murat", "Yusuf", "Ömer", "Can", "Kerem", "Efe", "Arda", "Selim",
	},
	female: []string{
		"Ayşe", "Fatma", "Emine", "Zeynep", "Elif", "Merve", "Büşra", "Esra",
		"Selin", "Defne", "Ece", "Nazlı", "Deniz", "Yasemin", "Gül", "Ebru",
	},
	last: []string{
		"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Yıldız", "Yıldırım", "Öztürk",
		"Aydın", "Özdemir", "Arslan", "Doğan", "Kılıç", "Aslan", "Çetin", "Kara",
	},
}

var greekPool = pool{
	male: []string{
		"Georgios", "Dimitrios", "Konstantinos", "Ioannis", "Nikolaos", "Panagiotis", "Christos", "Vasileios",
		"Athanasios", "Michail", "Evangelos", "Spyridon",
	},
	female: []string{
		"Maria", "Eleni", "Aikaterini", "Vasiliki", "Sofia", "Angeliki", "Dimitra", "Georgia",
		"Eirini", "Paraskevi", "Christina", "Despoina",
	},
	last: []string{
		"Papadopoulos", "Papadakis", "Georgiou", "Pappas", "Nikolaidis", "Oikonomou", "Dimitriou", "Vlachos",
		"Konstantinou", "Karagiannis", "Makris", "Alexiou",
	},
}
